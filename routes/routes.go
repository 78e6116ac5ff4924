package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spiderhome-backend/config"
	"spiderhome-backend/controllers"
	"spiderhome-backend/middleware"
	"spiderhome-backend/services"
)

func corsOrigins(cfg *config.Config) []string {
	origins := make([]string, 0, len(cfg.CORSOrigins))
	for _, origin := range cfg.CORSOrigins {
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	cfg *config.Config,
	tokens *services.TokenService,
	ac *controllers.AuthController,
	pc *controllers.ProductController,
	sc *controllers.SlideController,
	bc *controllers.BlogController,
	fc *controllers.FeatureController,
	stc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := corsOrigins(cfg)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public site surface: active/published content only.
		api.GET("/products", pc.PublicList)
		api.GET("/products/:slug", pc.PublicGetBySlug)
		api.GET("/slides", sc.PublicList)
		api.GET("/features", fc.PublicList)
		api.GET("/blogs", bc.PublicList)
		api.GET("/blogs/:slug", bc.PublicGetBySlug)
		api.GET("/settings", stc.Get)

		admin := api.Group("/admin")
		{
			admin.POST("/login", ac.Login)

			// Everything else under /api/admin requires a bearer token.
			protected := admin.Group("")
			protected.Use(middleware.RequireAuth(tokens))
			{
				protected.POST("/upload", controllers.UploadImage)

				products := protected.Group("/products")
				{
					products.GET("", pc.List)
					products.GET("/:id", pc.Get)
					products.POST("", pc.Create)
					products.PUT("/:id", pc.Update)
					products.DELETE("/:id", pc.Delete)
				}

				slides := protected.Group("/slides")
				{
					slides.GET("", sc.List)
					slides.GET("/:id", sc.Get)
					slides.POST("", sc.Create)
					slides.PUT("/:id", sc.Update)
					slides.DELETE("/:id", sc.Delete)
				}

				blogs := protected.Group("/blogs")
				{
					blogs.GET("", bc.List)
					blogs.GET("/:id", bc.Get)
					blogs.POST("", bc.Create)
					blogs.PUT("/:id", bc.Update)
					blogs.DELETE("/:id", bc.Delete)
				}

				features := protected.Group("/features")
				{
					features.GET("", fc.List)
					features.GET("/:id", fc.Get)
					features.POST("", fc.Create)
					features.PUT("/:id", fc.Update)
					features.DELETE("/:id", fc.Delete)
				}

				settings := protected.Group("/settings")
				{
					settings.GET("", stc.Get)
					settings.PUT("", stc.Update)
				}
			}
		}
	}

	return r
}
