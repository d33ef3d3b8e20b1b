package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/kasirgo/pos-api/docs"
	v1 "github.com/kasirgo/pos-api/internal/api/handler/v1"
	"github.com/kasirgo/pos-api/internal/api/middleware"
	"github.com/kasirgo/pos-api/internal/config"
	"github.com/kasirgo/pos-api/internal/repository"
	"github.com/kasirgo/pos-api/internal/repository/dao"
	"github.com/kasirgo/pos-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	productHandler := s.initProductHandler(db)
	saleHandler := s.initSaleHandler(db)
	healthcheckHandler := v1.NewHealthcheckHandler(db)
	s.MountHandlers(authHandler, productHandler, saleHandler, healthcheckHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	productDAO := dao.NewProductDAO(db)
	repo := repository.NewProductRepository(productDAO)
	svc := service.NewProductService(repo)
	handler := v1.NewProductHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initSaleHandler(db *gorm.DB) *v1.SaleHandler {
	saleDAO := dao.NewSaleDAO(db)
	repo := repository.NewSaleRepository(saleDAO)
	svc := service.NewSaleService(repo)
	handler := v1.NewSaleHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	productHandler *v1.ProductHandler,
	saleHandler *v1.SaleHandler,
	healthcheckHandler *v1.HealthcheckHandler,
) {
	const basePath = "/api"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/register", authHandler.HandleRegister)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	products := s.Router.Group(basePath+"/products", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		products.GET("", productHandler.HandleListProducts)
		products.POST("", productHandler.HandleCreateProduct)
		products.PUT("/:id", productHandler.HandleUpdateProduct)
		products.DELETE("/:id", productHandler.HandleDeleteProduct)
	}

	sales := s.Router.Group(basePath+"/sales", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		sales.GET("", saleHandler.HandleListSales)
		sales.GET("/:id", saleHandler.HandleGetSale)
		sales.POST("", saleHandler.HandleCreateSale)
	}

	s.Router.Static("/uploads", s.Config.API.UploadsDir)

	s.Router.GET("/", healthcheckHandler.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "POS API"
	docs.SwaggerInfo.Description = "Point-of-sale backend: auth, product catalog, sale recording."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
