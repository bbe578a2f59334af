// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/YuliiaIvakhnenko/flower-shop/controllers"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, shopController *controllers.ShopController, flowerController *controllers.FlowerController, bouquetController *controllers.BouquetController, orderController *controllers.OrderController) {
	api := router.PathPrefix("/api").Subrouter()

	// Shop routes (admin creates shops; browsing reads them)
	api.HandleFunc("/shops", shopController.GetShops).Methods("GET")
	api.HandleFunc("/shops", shopController.CreateShop).Methods("POST")

	// Catalog routes
	api.HandleFunc("/flowers", flowerController.GetFlowers).Methods("GET")
	api.HandleFunc("/flowers", flowerController.CreateFlower).Methods("POST")
	api.HandleFunc("/bouquets", bouquetController.GetBouquets).Methods("GET")
	api.HandleFunc("/bouquets", bouquetController.CreateBouquet).Methods("POST")

	// Order routes
	api.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
}
