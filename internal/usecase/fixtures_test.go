package usecase

import "brickonomics/internal/domain/entities"

func defaultMaterials() []entities.Material {
	return []entities.Material{
		{ID: "m1", Name: "Portland Cement", Category: "cement", Unit: "bag", BaseRate: 350},
		{ID: "m2", Name: "Steel Reinforcement", Category: "steel", Unit: "kg", BaseRate: 65},
		{ID: "m3", Name: "Red Clay Bricks", Category: "bricks", Unit: "piece", BaseRate: 8},
		{ID: "m4", Name: "River Sand", Category: "sand", Unit: "cu.m", BaseRate: 2800},
		{ID: "m5", Name: "Crushed Stone Aggregate", Category: "aggregate", Unit: "cu.m", BaseRate: 2200},
	}
}

func defaultLaborRates() []entities.LaborRate {
	return []entities.LaborRate{
		{ID: "l1", Name: "Skilled Mason", Category: "skilled", BaseRate: 800},
		{ID: "l2", Name: "Unskilled Labor", Category: "unskilled", BaseRate: 500},
		{ID: "l3", Name: "Site Supervisor", Category: "supervisor", BaseRate: 1200},
	}
}
