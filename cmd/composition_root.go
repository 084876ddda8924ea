package cmd

import (
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/jobrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"log/slog"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
	}
}

func (c *CompositionRoot) createJobRepository() *jobrepo.GormJobRepository {
	return jobrepo.NewGormJobRepository(c.gormDB)
}

func (c *CompositionRoot) createCourierRepository() *courierrepo.GormCourierRepository {
	return courierrepo.NewGormCourierRepository(c.gormDB)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.createJobRepository())
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.createCourierRepository())
}

func (c *CompositionRoot) CreateToggleOnlineCommandHandler() commands.ToggleOnlineCommandHandler {
	return commands.NewToggleOnlineCommandHandler(c.createCourierRepository())
}

func (c *CompositionRoot) CreateMarkStaleCouriersOfflineCommandHandler() commands.MarkStaleCouriersOfflineCommandHandler {
	return commands.NewMarkStaleCouriersOfflineCommandHandler(c.createCourierRepository())
}

func (c *CompositionRoot) CreateGetAvailableJobsQueryHandler() queries.GetAvailableJobsQueryHandler {
	return queries.NewGetAvailableJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveCapabilitiesQueryHandler() queries.ResolveCapabilitiesQueryHandler {
	return queries.NewResolveCapabilitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	availableJobs := c.CreateGetAvailableJobsQueryHandler()
	acceptJob := c.CreateAcceptJobCommandHandler()
	updateLocation := c.CreateUpdateLocationCommandHandler()
	toggleOnline := c.CreateToggleOnlineCommandHandler()
	return httpin.NewServer(availableJobs, acceptJob, updateLocation, toggleOnline)
}

func (c *CompositionRoot) CreateAuthMiddleware() echo.MiddlewareFunc {
	resolver := c.CreateResolveCapabilitiesQueryHandler()
	return httpin.NewAuthMiddleware(resolver)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMarkStaleCouriersOfflineCommandHandler(),
		c.config.CourierOfflineAfter,
		c.logger,
	)
}
