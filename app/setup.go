package app

import (
	"context"
	"errors"

	"github.com/edusphere/admin-client/cascade"
	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/config"
	"github.com/edusphere/admin-client/model"
	"github.com/edusphere/admin-client/services/refdata"
	"github.com/edusphere/admin-client/services/refresher"
	"github.com/edusphere/admin-client/session"
	"github.com/edusphere/admin-client/utils"
	"github.com/edusphere/admin-client/utils/cache"
)

// Console bundles the wired-up pieces of the admin console: the API client,
// the reference-data service and the background cache refresher.
type Console struct {
	Env       *config.EnviornmentVariable
	Session   session.Session
	Client    *client.Client
	RefData   *refdata.Service
	Refresher *refresher.Manager
	Logger    *utils.Logger

	redis *cache.RedisCache
}

// SetupConsole builds a Console from the environment. Redis is optional:
// when it is disabled or unreachable the reference-data service falls back
// to fetching directly from the API.
func SetupConsole() (*Console, error) {
	logger := utils.NewLogger()

	if err := config.LoadENV(); err != nil {
		logger.Logf("no .env file loaded: %v", err)
	}

	env, err := config.Get()
	if err != nil {
		return nil, err
	}
	if env.ADMIN_ACCESS_TOKEN == "" {
		return nil, errors.New("ADMIN_ACCESS_TOKEN is not set")
	}

	sess := &session.Static{
		Token: env.ADMIN_ACCESS_TOKEN,
		User:  session.Profile{Name: env.ADMIN_NAME},
	}
	if err := session.Check(sess); err != nil {
		return nil, err
	}

	apiClient := client.NewClient(client.Config{
		BaseURL: env.API_BASE_URL,
		Session: sess,
		Timeout: env.API_TIMEOUT,
	})

	console := &Console{
		Env:     env,
		Session: sess,
		Client:  apiClient,
		Logger:  logger,
	}

	var refCache refdata.Cache
	if env.REFDATA_CACHE_ENABLED && env.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			logger.Logf("redis unavailable, reference data will not be cached: %v", err)
		} else {
			console.redis = redisCache
			refCache = redisCache
		}
	}

	console.RefData = refdata.New(apiClient, refCache, env.REFDATA_TTL)

	if refCache != nil {
		console.Refresher = refresher.NewManager(console.RefData, env.REFDATA_REFRESH_SPEC)
		if err := console.Refresher.Start(); err != nil {
			console.Close()
			return nil, err
		}
	}

	return console, nil
}

// TeacherSelect builds the dependent instructor select for batch forms:
// parent is the branch, options are its teachers via the reference cache.
func (c *Console) TeacherSelect(onChange func(cascade.Snapshot[model.Teacher])) *cascade.Controller[model.Teacher] {
	return cascade.New(c.RefData.TeachersByBranch, onChange)
}

// BatchSelect builds the dependent batch select for enrollment forms: parent
// is the course, options are its batches.
func (c *Console) BatchSelect(onChange func(cascade.Snapshot[model.Batch])) *cascade.Controller[model.Batch] {
	return cascade.New(func(ctx context.Context, courseID uint) ([]model.Batch, error) {
		list, err := c.Client.ListBatches(ctx, 1, courseID)
		if err != nil {
			return nil, err
		}
		return list.Batches, nil
	}, onChange)
}

// Close stops the refresher and releases the redis connection.
func (c *Console) Close() {
	if c.Refresher != nil {
		c.Refresher.Stop()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.Logger.Logf("closing redis: %v", err)
		}
	}
}
