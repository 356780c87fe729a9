package app

import (
	"context"
	"log"

	"jobportal/internal/config"
	"jobportal/internal/infrastructure/cache"
	"jobportal/internal/infrastructure/email"
	mongodb "jobportal/internal/infrastructure/persistence/mongo"
	ucadmin "jobportal/internal/usecase/admin"
	ucapplication "jobportal/internal/usecase/application"
	ucauth "jobportal/internal/usecase/auth"
	uccandidate "jobportal/internal/usecase/candidate"
	uccompany "jobportal/internal/usecase/company"
	ucidentity "jobportal/internal/usecase/identity"
	ucjob "jobportal/internal/usecase/job"

	"jobportal/internal/pkg/jwt"
)

// Container owns the process-wide dependencies: the mongo client, the
// redis cache, the mail dialer, and every usecase built on top of them.
type Container struct {
	Config config.Config
	Mongo  *mongodb.Client
	Cache  *cache.Redis

	Admins       *mongodb.AdminRepository
	Candidates   *mongodb.CandidateRepository
	Companies    *mongodb.CompanyRepository
	Jobs         *mongodb.JobRepository
	Applications *mongodb.ApplicationRepository

	Tokens       jwt.Service
	Resolver     *ucidentity.Resolver
	Auth         *ucauth.Service
	AdminUC      *ucadmin.Service
	CandidateUC  *uccandidate.Service
	CompanyUC    *uccompany.Service
	JobUC        *ucjob.Service
	AppUC        *ucapplication.Service
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	client, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	if err := client.EnsureIndexes(ctx); err != nil {
		_ = client.Close(context.Background())
		return nil, err
	}

	db := client.Database()
	admins := mongodb.NewAdminRepository(db)
	candidates := mongodb.NewCandidateRepository(db)
	companies := mongodb.NewCompanyRepository(db)
	jobs := mongodb.NewJobRepository(db)
	applications := mongodb.NewApplicationRepository(db)

	redisCache := cache.NewRedis(cfg.Redis, logger)
	notifier := email.NewNotifier(cfg.SMTP, logger)
	tokens := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &Container{
		Config:       cfg,
		Mongo:        client,
		Cache:        redisCache,
		Admins:       admins,
		Candidates:   candidates,
		Companies:    companies,
		Jobs:         jobs,
		Applications: applications,
		Tokens:       tokens,
		Resolver:     ucidentity.NewResolver(admins, candidates, companies),
		Auth:         ucauth.NewService(admins, candidates, companies, tokens),
		AdminUC:      ucadmin.NewService(admins),
		CandidateUC:  uccandidate.NewService(candidates),
		CompanyUC:    uccompany.NewService(companies),
		JobUC:        ucjob.NewService(jobs, companies, redisCache, logger),
		AppUC:        ucapplication.NewService(applications, candidates, jobs, notifier, logger),
	}, nil
}

func (c *Container) Close(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("closing redis: %v", err)
		}
	}
	if c.Mongo != nil {
		return c.Mongo.Close(ctx)
	}
	return nil
}
