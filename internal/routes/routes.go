package routes

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"game-api/internal/authz"
	"game-api/internal/controllers"
	"game-api/internal/repositories"
	"game-api/internal/services"
	"game-api/pkg/config"
	"game-api/pkg/embedding"
	"game-api/pkg/filestorage"
	"game-api/pkg/llm"
	"game-api/pkg/middleware"
	"game-api/pkg/service"
)

// Dependencies are the shared clients the router wires into repositories and services.
// Redis may be nil, which disables the hierarchy cache.
type Dependencies struct {
	DB          *pgxpool.Pool
	Redis       *redis.Client
	JWT         service.JWTService
	Completer   llm.Completer
	Embedder    embedding.Engine
	FileStorage filestorage.FileStorageInterface
	Config      *config.Config
	Logger      *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) error {
	logger := deps.Logger
	cfg := deps.Config
	logger.Info("InitRouter: registrando rutas")

	e.Pre(echomw.RemoveTrailingSlash())
	api := e.Group("/api")

	// --- 1. Repositorios ---
	db := deps.DB
	assetTypeRepo := repositories.NewAssetTypeRepository(db, logger)
	manufacturerRepo := repositories.NewManufacturerRepository(db, logger)
	modelRepo := repositories.NewModelRepository(db, logger)
	equipmentRepo := repositories.NewEquipmentRepository(db, logger)
	plantRepo := repositories.NewPlantRepository(db, logger)
	systemRepo := repositories.NewSystemRepository(db, logger)
	subsystemRepo := repositories.NewSubsystemRepository(db, logger)
	clientRepo := repositories.NewClientRepository(db, logger)
	contractRepo := repositories.NewContractRepository(db, logger)
	roleRepo := repositories.NewRoleRepository(db, logger)
	applicationRepo := repositories.NewApplicationRepository(db, logger)
	userRepo := repositories.NewUserRepository(db, logger)
	positionRepo := repositories.NewPositionRepository(db, logger)
	personRepo := repositories.NewPersonRepository(db, logger)
	activityRepo := repositories.NewActivityRepository(db, logger)
	resumeRepo := repositories.NewResumeRepository(db, logger)
	bulkRepo := repositories.NewBulkRepository(logger)
	txManager := repositories.NewTxManager(db)

	var cache repositories.CacheRepositoryInterface
	if deps.Redis != nil {
		cache = repositories.NewRedisCacheRepository(deps.Redis)
	}

	// --- 2. Servicios ---
	hierarchy := services.NewHierarchyService(plantRepo, systemRepo, subsystemRepo, equipmentRepo, cache, cfg.Redis.HierarchyTTL, logger)

	assetTypeService := services.NewAssetTypeService(assetTypeRepo, deps.FileStorage, logger)
	manufacturerService := services.NewManufacturerService(manufacturerRepo, modelRepo, logger)
	modelService := services.NewModelService(modelRepo, manufacturerRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, subsystemRepo, assetTypeRepo, manufacturerRepo, modelRepo, hierarchy, logger)

	plantService := services.NewPlantService(plantRepo, contractRepo, systemRepo, hierarchy, logger)
	systemService := services.NewSystemService(systemRepo, plantRepo, subsystemRepo, hierarchy, logger)
	subsystemService := services.NewSubsystemService(subsystemRepo, systemRepo, equipmentRepo, hierarchy, logger)

	clientService := services.NewClientService(clientRepo, contractRepo, logger)
	contractService := services.NewContractService(contractRepo, clientRepo, userRepo, plantRepo, logger)

	userService := services.NewUserService(userRepo, roleRepo, logger)
	roleService := services.NewRoleService(roleRepo, applicationRepo, userRepo, logger)
	applicationService := services.NewApplicationService(applicationRepo, roleRepo, logger)
	authService := services.NewAuthService(userRepo, deps.JWT, logger)

	positionService := services.NewPositionService(positionRepo, personRepo, logger)
	personService := services.NewPersonService(personRepo, positionRepo, logger)
	activityService := services.NewActivityService(activityRepo, equipmentRepo, personRepo, logger)

	bulkService := services.NewBulkUploadService(bulkRepo, txManager, hierarchy, logger)
	resumeService := services.NewResumeService(resumeRepo, txManager, deps.FileStorage, deps.Embedder, deps.Completer, nil, cfg.Embedding, logger)
	procedureService, err := services.NewProcedureService(deps.Completer, logger)
	if err != nil {
		return err
	}

	// --- 3. Rutas públicas ---
	api.GET("/health", controllers.Health)
	procedureCtrl := controllers.NewProcedureController(procedureService, logger)
	api.GET("/ia/status", procedureCtrl.Status)
	runAuthRouter(api, controllers.NewAuthController(authService, logger))

	// --- 4. Rutas protegidas ---
	secure := api
	access := func(string) []echo.MiddlewareFunc { return nil }
	if cfg.Auth.Enabled {
		authMW := middleware.NewAuthMiddleware(deps.JWT, logger)
		secure = api.Group("", authMW.Auth)

		gatekeeper := authz.NewGatekeeper(roleApplications(applicationService), logger)
		access = func(application string) []echo.MiddlewareFunc {
			return []echo.MiddlewareFunc{gatekeeper.Require(application)}
		}
	}

	runEquipmentRouter(secure,
		controllers.NewAssetTypeController(assetTypeService, logger),
		controllers.NewManufacturerController(manufacturerService, logger),
		controllers.NewModelController(modelService, logger),
		controllers.NewEquipmentController(equipmentService, logger),
		access(authz.AppAssets),
	)
	runOrganizationRouter(secure,
		controllers.NewPlantController(plantService, hierarchy, logger),
		controllers.NewSystemController(systemService, logger),
		controllers.NewSubsystemController(subsystemService, logger),
		access(authz.AppAssets),
	)
	runBusinessRouter(secure,
		controllers.NewClientController(clientService, logger),
		controllers.NewContractController(contractService, logger),
		access(authz.AppClients),
	)
	runUserRouter(secure,
		controllers.NewUserController(userService, logger),
		controllers.NewRoleController(roleService, logger),
		controllers.NewApplicationController(applicationService, logger),
		access(authz.Superuser),
	)
	runOperationsRouter(secure,
		controllers.NewPositionController(positionService, logger),
		controllers.NewPersonController(personService, logger),
		controllers.NewActivityController(activityService, logger),
		controllers.NewResumeController(resumeService, logger),
		access(authz.AppStaff),
		access(authz.AppMaintenance),
	)
	runToolsRouter(secure,
		controllers.NewBulkUploadController(bulkService, logger),
		procedureCtrl,
		access(authz.Superuser),
		access(authz.AppMaintenance),
	)

	logger.Info("InitRouter: rutas registradas")
	return nil
}

// roleApplications resolves the application names granted to a role.
func roleApplications(applications services.ApplicationServiceInterface) authz.ApplicationLookup {
	return func(ctx context.Context, roleID uint64) ([]string, error) {
		apps, err := applications.ListByRole(ctx, roleID)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(apps))
		for _, app := range apps {
			names = append(names, app.Name)
		}
		return names, nil
	}
}
