package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/course-enrollment-api/api/swagger"
	"github.com/noah-isme/course-enrollment-api/internal/handler"
	internalmiddleware "github.com/noah-isme/course-enrollment-api/internal/middleware"
	"github.com/noah-isme/course-enrollment-api/internal/repository"
	"github.com/noah-isme/course-enrollment-api/internal/service"
	"github.com/noah-isme/course-enrollment-api/pkg/config"
	"github.com/noah-isme/course-enrollment-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-enrollment-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-enrollment-api/pkg/middleware/requestid"
	"github.com/noah-isme/course-enrollment-api/web"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Students    *handler.StudentHandler
	Courses     *handler.CourseHandler
	Enrollments *handler.EnrollmentHandler
	Health      *handler.MetricsHandler
}

// Build wires repositories, services and handlers on top of db and returns
// the engine. metrics is nil when instrumentation is disabled.
func Build(cfg *config.Config, db *sqlx.DB, metrics *service.MetricsService, logr *zap.Logger) *gin.Engine {
	validate := validator.New()

	students := service.NewStudentService(repository.NewStudentRepository(db), validate, metrics, logr)
	courses := service.NewCourseService(repository.NewCourseRepository(db), validate, metrics, logr)
	enrollments := service.NewEnrollmentService(repository.NewEnrollmentRepository(db), validate, metrics, logr)

	var exports *service.ExportService
	if cfg.Exports.Enabled {
		exports = service.NewExportService(enrollments, logr)
	}

	return New(cfg, logr, metrics, Handlers{
		Students:    handler.NewStudentHandler(students),
		Courses:     handler.NewCourseHandler(courses),
		Enrollments: newEnrollmentHandler(enrollments, exports),
		Health:      handler.NewMetricsHandler(metrics, db),
	})
}

func newEnrollmentHandler(enrollments *service.EnrollmentService, exports *service.ExportService) *handler.EnrollmentHandler {
	// A typed nil would defeat the handler's disabled check.
	if exports == nil {
		return handler.NewEnrollmentHandler(enrollments, nil)
	}
	return handler.NewEnrollmentHandler(enrollments, exports)
}

// New builds the gin engine: shared middleware, probes, docs, the resource
// routes below cfg.APIPrefix and the browser forms.
func New(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(internalmiddleware.Metrics(metrics))
	}

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", h.Health.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		swagger.SwaggerInfo.BasePath = docsBasePath(cfg.APIPrefix)
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	students := api.Group("/students")
	students.GET("", h.Students.List)
	students.POST("", h.Students.Create)
	students.PUT("/:id", h.Students.Update)
	students.DELETE("/:id", h.Students.Delete)

	courses := api.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", h.Courses.Create)
	courses.PUT("/:id", h.Courses.Update)
	courses.DELETE("/:id", h.Courses.Delete)

	enrollments := api.Group("/enrollments")
	enrollments.POST("", h.Enrollments.Create)
	enrollments.DELETE("", h.Enrollments.Delete)
	enrollments.GET("/:studentId", h.Enrollments.ListByStudent)
	if cfg.Exports.Enabled {
		enrollments.GET("/:studentId/export", h.Enrollments.Export)
	}

	if cfg.WebUI.Enabled {
		web.Register(r, cfg.APIPrefix)
	}

	return r
}

func docsBasePath(prefix string) string {
	if prefix == "" {
		return "/"
	}
	return prefix
}
