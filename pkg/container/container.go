package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	contacthandler "portfolio-backend/internal/domains/contact/handler"
	contactrepo "portfolio-backend/internal/domains/contact/repository"
	contactservice "portfolio-backend/internal/domains/contact/service"
	projecthandler "portfolio-backend/internal/domains/project/handler"
	projectrepo "portfolio-backend/internal/domains/project/repository"
	projectservice "portfolio-backend/internal/domains/project/service"
	skillhandler "portfolio-backend/internal/domains/skill/handler"
	skillrepo "portfolio-backend/internal/domains/skill/repository"
	skillservice "portfolio-backend/internal/domains/skill/service"
	timelinehandler "portfolio-backend/internal/domains/timeline/handler"
	timelinerepo "portfolio-backend/internal/domains/timeline/repository"
	timelineservice "portfolio-backend/internal/domains/timeline/service"
	userhandler "portfolio-backend/internal/domains/user/handler"
	userrepo "portfolio-backend/internal/domains/user/repository"
	userservice "portfolio-backend/internal/domains/user/service"
	rediscache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/pkg/jwt"
)

// Container owns the application dependency graph: infrastructure
// first, then repositories, services, and handlers on top.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache *rediscache.RedisCache
	Queue *queue.Client

	JWTManager *jwt.Manager

	ProjectHandler  *projecthandler.ProjectHandler
	SkillHandler    *skillhandler.SkillHandler
	TimelineHandler *timelinehandler.TimelineHandler
	ContactHandler  *contacthandler.ContactHandler
	UserHandler     *userhandler.UserHandler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	c.Cache = rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	pool := c.DB.Pool

	projectRepository := projectrepo.NewPostgresProjectRepository(pool)
	skillRepository := skillrepo.NewPostgresSkillRepository(pool)
	timelineRepository := timelinerepo.NewPostgresTimelineRepository(pool)
	contactRepository := contactrepo.NewPostgresContactRepository(pool)
	userRepository := userrepo.NewPostgresUserRepository(pool)

	projectService := projectservice.NewProjectService(projectRepository, c.Queue)
	skillService := skillservice.NewSkillService(skillRepository)
	timelineService := timelineservice.NewTimelineService(timelineRepository)
	contactService := contactservice.NewContactService(contactRepository, c.Queue)
	userService := userservice.NewUserService(userRepository, c.JWTManager)

	c.ProjectHandler = projecthandler.NewProjectHandler(projectService)
	c.SkillHandler = skillhandler.NewSkillHandler(skillService)
	c.TimelineHandler = timelinehandler.NewTimelineHandler(timelineService)
	c.ContactHandler = contacthandler.NewContactHandler(contactService)
	c.UserHandler = userhandler.NewUserHandler(userService)

	log.Info().
		Str("environment", cfg.App.Environment).
		Msg("Container initialized")

	return c, nil
}

// Cleanup closes infrastructure connections in reverse order
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close queue client")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
