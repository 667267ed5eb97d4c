package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	changelogrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/changelog"
	modulerepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/module"
	projectrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/project"
	"github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/sequence"
	sprintrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/sprint"
	taskrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/task"
	timesheetrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/timesheet"
	userrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/user"
	"github.com/BhaveshChowdary07/ptas-api/internal/auth"
	"github.com/BhaveshChowdary07/ptas-api/internal/config"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/codegen"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/module"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/project"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/sprint"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/task"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/timesheet"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/user"
	"github.com/BhaveshChowdary07/ptas-api/internal/transport/middleware"
	"github.com/BhaveshChowdary07/ptas-api/internal/transport/rest"
)

// apiPrefix is the path prefix that requires a bearer token.
const apiPrefix = "/api/"

// rateLimitSweep is how often idle rate limit buckets are dropped.
const rateLimitSweep = 5 * time.Minute

// Services holds the wired domain services. Commands that bypass HTTP use
// it directly.
type Services struct {
	Projects   *project.Service
	Modules    *module.Service
	Sprints    *sprint.Service
	Tasks      *task.Service
	Timesheets *timesheet.Service
	Users      *user.Service
	ChangeLogs *changelog.Reader
}

// NewServices builds every repository and service on top of pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(pool)

	projects := projectrepo.New(pool)
	modules := modulerepo.New(pool)
	sprints := sprintrepo.New(pool)
	tasks := taskrepo.New(pool)
	timesheets := timesheetrepo.New(pool)
	users := userrepo.New(pool)
	changeLogs := changelogrepo.New(pool)
	sequences := sequence.New(pool)

	authorizer := auth.NewAuthorizer(domain.DefaultPolicy())
	changes := changelog.NewWriter(logger, changeLogs, txm)
	codes := codegen.NewGenerator(logger, sequences, projects, sprints, modules, users, postgres.WithoutTx)

	timesheetSvc := timesheet.NewService(logger, timesheets, tasks, changes, authorizer, txm)

	return &Services{
		Projects: project.NewService(logger, projects, modules, codes, changes, authorizer, txm, project.Settings{
			DefaultOrgCode:   cfg.Project.DefaultOrgCode,
			SerialRetries:    cfg.Project.SerialRetries,
			MaxDocumentBytes: cfg.Project.MaxDocumentBytes,
		}),
		Modules:    module.NewService(logger, modules, projects, codes, changes, authorizer, txm),
		Sprints:    sprint.NewService(logger, sprints, projects, codes, changes, authorizer, txm),
		Tasks:      task.NewService(logger, tasks, codes, timesheetSvc, changes, authorizer, txm, cfg.Project.SerialRetries),
		Timesheets: timesheetSvc,
		Users:      user.NewService(logger, users, authorizer),
		ChangeLogs: changelog.NewReader(logger, changeLogs, cfg.Project.ActivityPageSize),
	}
}

// NewHandler mounts every route behind the middleware chain. The returned
// stop function releases background resources held by the chain.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, svc *Services, logger *slog.Logger) (http.Handler, func()) {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Projects:   rest.NewProjectHandler(svc.Projects, svc.ChangeLogs, cfg.Project.MaxDocumentBytes, logger),
		Modules:    rest.NewModuleHandler(svc.Modules, logger),
		Sprints:    rest.NewSprintHandler(svc.Sprints, logger),
		Tasks:      rest.NewTaskHandler(svc.Tasks, logger),
		Timesheets: rest.NewTimesheetHandler(svc.Timesheets, logger),
		ChangeLogs: rest.NewChangeLogHandler(svc.ChangeLogs, logger),
		Users:      rest.NewUserHandler(svc.Users, logger),
	})

	limiter := middleware.NewRateLimiter(rateLimitSweep)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt, apiPrefix),
		limiter.Limit(cfg.Server.RateLimitPerMinute),
	)

	return chain(mux), limiter.Stop
}
