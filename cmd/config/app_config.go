package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"Recipe-API/internal/api/handlers"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/internal/api/routes"
	"Recipe-API/internal/middleware"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/internal/utils/storage"
	"Recipe-API/pkg/ingredient"
	"Recipe-API/pkg/jwt"
	"Recipe-API/pkg/recipe"
	"Recipe-API/pkg/tag"
	"Recipe-API/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// AppOptions holds the collaborators NewApp wires together. Zero values are
// filled in by withDefaults.
type AppOptions struct {
	LogOutput        io.Writer
	RateLimitMax     int
	BodyLimitMB      int
	CORSAllowOrigins string
	JWTService       jwt.JWTService
	Storage          storage.FileStorage
	Paths            storage.PathGenerator
	Mailer           mailing.Mailer
	// MediaRoot and MediaURL mount local uploads; leave empty to skip.
	MediaRoot string
	MediaURL  string
}

func (o AppOptions) withDefaults() AppOptions {
	if o.LogOutput == nil {
		o.LogOutput = io.Discard
	}
	if o.BodyLimitMB <= 0 {
		o.BodyLimitMB = 4
	}
	if o.Paths.NewID == nil {
		o.Paths = storage.NewPathGenerator()
	}
	if o.Mailer == nil {
		o.Mailer = mailing.NewMailer(mailing.MailConfig{})
	}
	return o
}

// OptionsFromConfig builds AppOptions from the loaded configuration. The
// returned closer releases the access log file. An empty JWT_SECRET is
// refused.
func OptionsFromConfig(ctx context.Context) (AppOptions, io.Closer, error) {
	secret := utils.GetConfig("JWT_SECRET")
	if secret == "" {
		return AppOptions{}, nil, fmt.Errorf("JWT_SECRET: %w", jwt.ErrMissingSecret)
	}

	logFile, err := openLogFile(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return AppOptions{}, nil, err
	}

	opts := AppOptions{
		LogOutput:        logFile,
		RateLimitMax:     utils.GetConfigInt("RATE_LIMIT_MAX", 10),
		BodyLimitMB:      utils.GetConfigInt("MAX_UPLOAD_MB", 4),
		CORSAllowOrigins: utils.GetConfig("CORS_ALLOW_ORIGINS"),
		JWTService: jwt.NewJWTService(
			secret,
			time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES", 120))*time.Minute,
		),
		Paths:  storage.NewPathGenerator(),
		Mailer: mailing.NewMailer(mailing.LoadMailConfig()),
	}

	switch driver := utils.GetConfig("STORAGE_DRIVER"); driver {
	case "s3":
		s3, err := storage.NewAwsS3(ctx, storage.AwsS3Config{
			Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
			Region:    utils.GetConfig("AWS_S3_REGION"),
			AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
			SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
		})
		if err != nil {
			logFile.Close()
			return AppOptions{}, nil, err
		}
		opts.Storage = s3
	case "local", "":
		opts.MediaRoot = utils.GetConfig("MEDIA_ROOT")
		opts.MediaURL = utils.GetConfig("MEDIA_URL")
		opts.Storage = storage.NewLocalStorage(opts.MediaRoot, opts.MediaURL)
	default:
		logFile.Close()
		return AppOptions{}, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}

	return opts, logFile, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}

func NewApp(db *gorm.DB, opts AppOptions) (*fiber.App, error) {
	opts = opts.withDefaults()
	if opts.JWTService == nil {
		return nil, fmt.Errorf("jwt service is required")
	}
	if opts.Storage == nil {
		return nil, fmt.Errorf("file storage is required")
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit:    opts.BodyLimitMB * 1024 * 1024,
		ErrorHandler: presenters.ErrorHandler,
	})
	validator := utils.Validate

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     opts.LogOutput,
	}))
	if opts.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	tagRepository := tag.NewTagRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	userService := user.NewUserService(userRepository, opts.JWTService, opts.Mailer)
	tagService := tag.NewTagService(tagRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		tagRepository,
		ingredientRepository,
		opts.Storage,
		opts.Paths,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		TagHandler:        tagHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		Middleware:        middleware.NewMiddleware(userService, opts.CORSAllowOrigins),
		JWTService:        opts.JWTService,
		MediaRoot:         opts.MediaRoot,
		MediaURL:          opts.MediaURL,
	}
	routesConfig.Setup()
	return app, nil
}
