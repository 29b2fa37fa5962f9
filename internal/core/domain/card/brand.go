package card

import "errors"

var ErrParseBrand = errors.New("invalid card brand")

type Brand struct {
	v string
}

func (b Brand) String() string {
	return b.v
}

func ParseBrand(value string) (Brand, error) {
	switch value {
	case "visa":
		return BrandVisa, nil
	case "mastercard":
		return BrandMastercard, nil
	case "elo":
		return BrandElo, nil
	case "amex":
		return BrandAmex, nil
	case "hipercard":
		return BrandHipercard, nil
	case "other":
		return BrandOther, nil
	default:
		return BrandUnknown, ErrParseBrand
	}
}

var (
	BrandUnknown    = Brand{}
	BrandVisa       = Brand{v: "visa"}
	BrandMastercard = Brand{v: "mastercard"}
	BrandElo        = Brand{v: "elo"}
	BrandAmex       = Brand{v: "amex"}
	BrandHipercard  = Brand{v: "hipercard"}
	BrandOther      = Brand{v: "other"}
)
