package mappers

import (
	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID: model.ID,
		OrderItemID: model.OrderItemID,
		BuyerID: model.BuyerID,
		Reason: domain.DisputeReason(model.Reason),
		Description: model.Description,
		PhotoProofURL: model.PhotoProofURL,
		Status: domain.DisputeStatus(model.Status),
		ResolutionNote: model.ResolutionNote,
		ResolvedByID: model.ResolvedByID,
		ResolvedAt: model.ResolvedAt,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID: dispute.ID,
		OrderItemID: dispute.OrderItemID,
		BuyerID: dispute.BuyerID,
		Reason: string(dispute.Reason),
		Description: dispute.Description,
		PhotoProofURL: dispute.PhotoProofURL,
		Status: string(dispute.Status),
		ResolutionNote: dispute.ResolutionNote,
		ResolvedByID: dispute.ResolvedByID,
		ResolvedAt: dispute.ResolvedAt,
		CreatedAt: dispute.CreatedAt,
		UpdatedAt: dispute.UpdatedAt,
	}
}
