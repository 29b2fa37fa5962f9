package sendforgotpasswordemail

import (
	"context"
	"errors"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/mail"
	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/core/services"
	generatetoken "github.com/d1d2-apps/ewallet-backend/internal/core/services/generate_password_reset_token"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return ratelimiter.Key("send-forgot-password-email", string(i.Email))
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	generateToken  services.Service[generatetoken.Input, generatetoken.Result]
	renderer       user.PasswordResetEmailRenderer
	sender         mail.Sender
	from           string
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	generateToken services.Service[generatetoken.Input, generatetoken.Result],
	renderer user.PasswordResetEmailRenderer,
	sender mail.Sender,
	from string,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if generateToken == nil {
		panic(e.NewNilArgumentError("generateToken"))
	}
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if from == "" {
		panic(e.NewEmptyArgumentError("from"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		generateToken:  generateToken,
		renderer:       renderer,
		sender:         sender,
		from:           from,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset requested for unknown email.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	generated, err := s.generateToken.Run(ctx, generatetoken.Input{UserID: u.ID})
	if err != nil {
		return result, err
	}

	email, err := s.renderer.RenderPasswordResetEmail(ctx, u, generated.Token)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	err = s.sender.Send(ctx, mail.Envelope{
		Subject:  email.Subject,
		From:     s.from,
		To:       string(u.Email),
		HTMLBody: email.HTMLBody,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(ctx, "Password reset email has been sent.", logging.Entry("userID", u.ID))
	return result, nil
}
