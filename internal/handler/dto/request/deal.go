package request

import (
	"time"

	"sabzi/internal/usecase/commands"
)

type CreateDealRequest struct {
	ItemName       string    `json:"item_name" binding:"required,max=200"`
	TargetQuantity float64   `json:"target_quantity" binding:"required,gt=0"`
	Unit           string    `json:"unit" binding:"required,oneof=kg dozen piece liter"`
	Deadline       time.Time `json:"deadline" binding:"required"`
}

func (r *CreateDealRequest) ToCommand() commands.CreateDealRequest {
	return commands.CreateDealRequest{
		ItemName:       r.ItemName,
		TargetQuantity: r.TargetQuantity,
		Unit:           r.Unit,
		Deadline:       r.Deadline,
	}
}

type ContributeRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

func (r *ContributeRequest) ToCommand() commands.ContributeRequest {
	return commands.ContributeRequest{Quantity: r.Quantity}
}
