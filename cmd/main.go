package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Recipe-API/cmd/config"
	migration "Recipe-API/cmd/database/migrate"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func main() {
	createSuperuser := flag.Bool("createsuperuser", false, "create an administrative account and exit")
	email := flag.String("email", "", "superuser email (with -createsuperuser)")
	password := flag.String("password", "", "superuser password (with -createsuperuser)")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if *createSuperuser {
		if err := runCreateSuperuser(db, *email, *password); err != nil {
			log.Fatalf("create superuser: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, closer, err := config.OptionsFromConfig(ctx)
	if err != nil {
		log.Fatalf("load app options: %v", err)
	}
	defer closer.Close()

	app, err := config.NewApp(db, opts)
	if err != nil {
		log.Fatalf("build app: %v", err)
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("listen: %v", err)
	}
}

func runCreateSuperuser(db *gorm.DB, email, password string) error {
	svc := user.NewUserService(
		user.NewUserRepository(db),
		nil,
		mailing.NewMailer(mailing.MailConfig{}),
	)
	u, err := svc.CreateSuperuser(context.Background(), email, password)
	if err != nil {
		return err
	}
	log.Infof("superuser %s created", u.Email)
	return nil
}
