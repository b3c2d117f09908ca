package service

import (
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	var pinger store.Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ProductService: NewProductService(storages.ProductRepository, logger),
		AppInfoService: NewAppInfoService(pinger, logger),
	}
}
