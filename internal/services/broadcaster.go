package services

import "coin-casino-backend/internal/models"

type Broadcaster interface {
	BroadcastSettlement(accountID int64, result *models.SettlementResult)
	BroadcastBalance(accountID, balance int64)
}
