package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"spiderhome-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN(cfg *Config) (string, error) {
	raw := strings.TrimSpace(cfg.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(cfg.DatabaseURL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
	), nil
}

// SeedDatabase creates the bootstrap admin user and the single site settings
// row when absent. It never mutates existing rows.
func SeedDatabase(db *gorm.DB, cfg *Config) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash bootstrap admin password: %v", err)
		} else {
			user := models.User{
				Username:     cfg.AdminUsername,
				PasswordHash: string(hash),
				Role:         models.RoleAdmin,
			}
			if err := db.Create(&user).Error; err != nil {
				log.Printf("warning: failed to create bootstrap admin: %v", err)
			} else {
				log.Println("Bootstrap admin seeded")
			}
		}
	}

	var settingCount int64
	db.Model(&models.SiteSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.SiteSetting{
			CompanyName: "SpiderHome",
			Tagline:     "Smart living, made simple",
			Email:       "contact@spiderhome.example",
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed site settings: %v", err)
		} else {
			log.Println("Site settings seeded")
		}
	}
}

func ConnectDatabase(cfg *Config) error {
	dsn, err := resolveMySQLDSN(cfg)
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.LoginAttempt{},
		&models.SiteSetting{},
		&models.Product{},
		&models.Slide{},
		&models.Blog{},
		&models.Feature{},
	); err != nil {
		return err
	}

	SeedDatabase(DB, cfg)
	return nil
}
