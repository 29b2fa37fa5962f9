package deps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/config"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	dl "github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/mail"
	drl "github.com/d1d2-apps/ewallet-backend/internal/core/domain/rate_limiter"
	duow "github.com/d1d2-apps/ewallet-backend/internal/core/domain/unit_of_work"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	dbcard "github.com/d1d2-apps/ewallet-backend/internal/db/card"
	dbdebtor "github.com/d1d2-apps/ewallet-backend/internal/db/debtor"
	uow "github.com/d1d2-apps/ewallet-backend/internal/db/unit_of_work"
	dbuser "github.com/d1d2-apps/ewallet-backend/internal/db/user"
	authtoken "github.com/d1d2-apps/ewallet-backend/internal/implementations/auth_token"
	"github.com/d1d2-apps/ewallet-backend/internal/implementations/email"
	emailtemplate "github.com/d1d2-apps/ewallet-backend/internal/implementations/email_template"
	"github.com/d1d2-apps/ewallet-backend/internal/implementations/logging"
	passwordhasher "github.com/d1d2-apps/ewallet-backend/internal/implementations/password_hasher"
	passwordresettoken "github.com/d1d2-apps/ewallet-backend/internal/implementations/password_reset_token"
	ratelimiter "github.com/d1d2-apps/ewallet-backend/internal/implementations/rate_limiter"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UnitOfWork                   duow.UnitOfWork
	UserRepository               user.UserRepository
	PasswordResetTokenRepository user.PasswordResetTokenRepository
	DebtorRepository             debtor.Repository
	CardRepository               card.Repository

	RateLimiter drl.RateLimiter
	MailSender  mail.Sender

	PasswordHasher              user.PasswordHasher
	AuthTokens                  *authtoken.JWT
	PasswordResetTokenGenerator user.PasswordResetTokenGenerator
	PasswordResetEmailRenderer  user.PasswordResetEmailRenderer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.PasswordResetTokenRepository = dbuser.NewPgxPasswordResetTokenRepository(deps.DB)
	deps.DebtorRepository = dbdebtor.NewPgxDebtorRepository(deps.DB)
	deps.CardRepository = dbcard.NewPgxCardRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.MailSender = email.NewSESSender(deps.AwsConfig)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.AuthTokens = authtoken.NewJWT(deps.Config.AuthTokenSecret, deps.Config.AuthTokenTTL, deps.Now)
	deps.PasswordResetTokenGenerator = passwordresettoken.NewUUID()
	deps.PasswordResetEmailRenderer = emailtemplate.NewRenderer(deps.Config.PasswordResetBaseURL)

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		flushSentry()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := newAwsConfig(context.Background(), deps.Config)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func newAwsConfig(ctx context.Context, c *config.Config) (aws.Config, error) {
	return awsConfig.LoadDefaultConfig(
		ctx,
		awsConfig.WithRegion(c.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AwsAccessKey, c.AwsSecretKey, ""),
		),
		// Mail failures surface to the caller as is.
		awsConfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	)
}

func (deps *Deps) initLogger() func() {
	var logger *logging.ZapLogger
	if deps.Config.LogFile != "" {
		logger = logging.NewZapLoggerWithFile(deps.Config.LogFile)
	} else {
		logger = logging.NewZapLogger()
	}
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.New(context.Background(), deps.Config.PostgresqlURL)
	if err == nil {
		err = db.Ping(context.Background())
	}
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

// initSentry must run after initLogger: when enabled it wraps deps.Logger.
func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger = logging.NewSentryLogger(deps.Logger, sentry.CurrentHub())
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
