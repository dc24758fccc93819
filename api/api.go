package api

import (
	"net/http"

	"products-backend/service"

	"github.com/gin-gonic/gin"
)

type API struct {
	engine *gin.Engine
}

func setupRouter(stores *service.StoreService, products *service.ProductService) *gin.Engine {
	r := gin.Default()

	// Ping test
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// List all stores
	r.GET("/stores", func(c *gin.Context) {
		all, err := stores.GetAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, all)
	})

	// Create a store
	r.POST("/stores", func(c *gin.Context) {
		dto, ok := bindBody[service.CreateStoreDTO](c)
		if !ok {
			return
		}
		st, err := stores.Create(c.Request.Context(), dto)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	})

	// Get a store by id
	r.GET("/stores/:id", func(c *gin.Context) {
		st, err := stores.Get(c.Request.Context(), parseID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	})

	// List all products with their stores
	r.GET("/products", func(c *gin.Context) {
		all, err := products.GetAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, all)
	})

	// Create a product referencing an existing store
	r.POST("/products", func(c *gin.Context) {
		dto, ok := bindBody[service.CreateProductDTO](c)
		if !ok {
			return
		}
		p, err := products.Create(c.Request.Context(), dto)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	// Connection-pool stress demo, fire-and-forget
	r.POST("/products/test", func(c *gin.Context) {
		products.TestConnectionPool()
		c.Status(http.StatusOK)
	})

	// Get a product by id
	r.GET("/products/:id", func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), parseID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	return r
}

func New(stores *service.StoreService, products *service.ProductService) (*API, error) {
	return &API{
		engine: setupRouter(stores, products),
	}, nil
}

func (a *API) Run(port string) {
	a.engine.Run(":" + port)
}
