package main

import (
	"fmt"

	"github.com/imaddar/poker-arena/services/tablecore/internal/domain"
)

func buildInitialSeats(cfg domain.TableConfig, count uint8) ([]domain.SeatState, error) {
	if count < 2 || count > cfg.MaxSeats {
		return nil, fmt.Errorf("seats must be in range 2..=%d, got %d", cfg.MaxSeats, count)
	}

	seats := make([]domain.SeatState, 0, count)
	for i := uint8(1); i <= count; i++ {
		seatNo, err := domain.NewSeatNo(i, cfg.MaxSeats)
		if err != nil {
			return nil, err
		}
		seats = append(seats, domain.NewSeatState(seatNo, cfg.StartingStack))
	}
	return seats, nil
}

func markSittingOut(seats []domain.SeatState, seatNos []uint8) error {
	for _, value := range seatNos {
		found := false
		for i := range seats {
			if seats[i].SeatNo.Value() == value {
				seats[i].Status = domain.SeatStatusSittingOut
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("sitting-out seat %d is not at the table", value)
		}
	}
	return nil
}
