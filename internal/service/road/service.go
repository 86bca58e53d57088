package road

import (
	"baccarat_backend/internal/config"
	"baccarat_backend/internal/repository"
	"baccarat_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.RoadConfig
	roundRepo repository.RoundRepository
	tableRepo repository.TableRepository
	statsRepo repository.RoadStatsRepository
	txManager trm.Manager
}

// NewRoadService Создать сервис табло "большой дороги"
func NewRoadService(
	cfg config.RoadConfig,
	roundRepo repository.RoundRepository,
	tableRepo repository.TableRepository,
	statsRepo repository.RoadStatsRepository,
	txManager trm.Manager,
) service.RoadService {
	return &serv{
		cfg:       cfg,
		roundRepo: roundRepo,
		tableRepo: tableRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
