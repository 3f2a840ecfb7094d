package service

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"time"

	"appremises/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Tarifas vigentes. La tarifa por minuto existe en el cuadro tarifario pero
// la fórmula actual no la usa (no hay estimación de duración).
var (
	TarifaBase      = decimal.NewFromInt(500)
	TarifaPorKm     = decimal.NewFromInt(50)
	TarifaPorMinuto = decimal.NewFromInt(2)
)

const precioCacheTTL = 60 * time.Second

// TarifaService estimates trip prices. Without a geolocation provider the
// distance is a uniform draw in [5, 25) km, so estimates land in [750, 1750).
type TarifaService interface {
	Estimar(ctx context.Context, origen, destino string) (*dto.PrecioResponse, error)
}

type tarifaService struct {
	rdb *redis.Client // nil in unit tests — cache becomes a no-op
}

func NewTarifaService(rdb *redis.Client) TarifaService {
	return &tarifaService{rdb: rdb}
}

func (s *tarifaService) Estimar(ctx context.Context, origen, destino string) (*dto.PrecioResponse, error) {
	cacheKey := "precio:" + origen + "|" + destino

	// Repeated quotes for the same pair within the TTL return the same
	// estimate, so the booking screen and the confirm call agree.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PrecioResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	distancia := estimarDistanciaKm()
	precio := TarifaBase.Add(TarifaPorKm.Mul(decimal.NewFromFloat(distancia))).Round(2)

	resp := &dto.PrecioResponse{
		Origen:      origen,
		Destino:     destino,
		DistanciaKm: distancia,
		Precio:      precio,
		TarifaBase:  TarifaBase,
		TarifaPorKm: TarifaPorKm,
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, precioCacheTTL).Err()
		}
	}

	return resp, nil
}

// estimarDistanciaKm draws a distance in [5, 25) km with one decimal.
// Placeholder until a real routing provider is integrated.
func estimarDistanciaKm() float64 {
	return math.Round((5+rand.Float64()*20)*10) / 10
}
