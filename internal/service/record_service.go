package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"
	"github.com/harshil12345000/certifyr-sub001/pkg/events"
	pktNats "github.com/harshil12345000/certifyr-sub001/pkg/nats"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"

	"github.com/google/uuid"
)

type IRecordService interface {
	ImportDataset(ctx context.Context, userId, orgId uuid.UUID, req *dto.ImportDatasetRequest) (*dto.ImportDatasetResponse, error)
	GetAllDatasets(ctx context.Context, orgId uuid.UUID) ([]*dto.DatasetResponse, error)
	GetDatasetRecords(ctx context.Context, orgId, datasetId uuid.UUID) ([]*dto.PersonRecordResponse, error)
	DeleteDataset(ctx context.Context, orgId, datasetId uuid.UUID) error
}

type recordService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewRecordService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, eventPublisher *pktNats.Publisher) IRecordService {
	return &recordService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// ImportDataset persists an uploaded roster. Rows are stored as-is,
// empty rows are skipped and counted.
func (s *recordService) ImportDataset(ctx context.Context, userId, orgId uuid.UUID, req *dto.ImportDatasetRequest) (*dto.ImportDatasetResponse, error) {
	now := time.Now()
	dataset := &entity.PersonDataset{
		Id:             uuid.New(),
		OrganizationId: orgId,
		Name:           req.Name,
		UploadedBy:     userId,
		CreatedAt:      now,
	}

	var personRecords []*entity.PersonRecord
	skipped := 0
	for _, row := range req.Records {
		rec := make(records.Record, len(row))
		for k, v := range row {
			rec[k] = v
		}
		if records.Name(rec) == "" && records.ID(rec) == "" {
			skipped++
			continue
		}
		personRecords = append(personRecords, &entity.PersonRecord{
			Id:             uuid.New(),
			OrganizationId: orgId,
			DatasetId:      dataset.Id,
			Data:           rec,
			CreatedAt:      now,
		})
	}

	if len(personRecords) == 0 {
		return nil, errors.New("no usable rows in upload")
	}
	dataset.RecordCount = len(personRecords)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PersonDatasetRepository().Create(ctx, dataset); err != nil {
		return nil, err
	}
	if err := uow.PersonRecordRepository().CreateBatch(ctx, personRecords); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Audit trail goes through the internal queue
	if s.publisherService != nil {
		auditMsg := dto.PublishAuditMessage{
			Level:   "info",
			Module:  "records",
			Message: fmt.Sprintf("dataset %q imported with %d records", dataset.Name, dataset.RecordCount),
			Details: map[string]interface{}{
				"dataset_id":      dataset.Id.String(),
				"organization_id": orgId.String(),
				"user_id":         userId.String(),
				"record_count":    dataset.RecordCount,
				"skipped_rows":    skipped,
			},
		}
		if msgJson, err := json.Marshal(auditMsg); err == nil {
			if err := s.publisherService.Publish(ctx, msgJson); err != nil {
				fmt.Printf("[WARN] Failed to publish audit message: %v\n", err)
			}
		}
	}

	// PUBLISH EVENT
	if s.eventPublisher != nil {
		event := events.NewDatasetImportedEvent(dataset.Id.String(), orgId.String(), userId.String(), dataset.Name, dataset.RecordCount)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish DATASET_IMPORTED event: %v\n", err)
		}
	}

	return &dto.ImportDatasetResponse{
		Id:          dataset.Id,
		RecordCount: dataset.RecordCount,
		SkippedRows: skipped,
	}, nil
}

func (s *recordService) GetAllDatasets(ctx context.Context, orgId uuid.UUID) ([]*dto.DatasetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	datasets, err := uow.PersonDatasetRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.DatasetResponse, 0, len(datasets))
	for _, d := range datasets {
		response = append(response, &dto.DatasetResponse{
			Id:          d.Id,
			Name:        d.Name,
			RecordCount: d.RecordCount,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		})
	}
	return response, nil
}

func (s *recordService) GetDatasetRecords(ctx context.Context, orgId, datasetId uuid.UUID) ([]*dto.PersonRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dataset, err := uow.PersonDatasetRepository().FindOne(ctx,
		specification.ByID{ID: datasetId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		return nil, errors.New("dataset not found")
	}

	personRecords, err := uow.PersonRecordRepository().FindAll(ctx,
		specification.ByDatasetID{DatasetID: datasetId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.PersonRecordResponse, 0, len(personRecords))
	for _, r := range personRecords {
		data := make(map[string]string, len(r.Data))
		for k := range r.Data {
			data[k] = records.Field(r.Data, k)
		}
		response = append(response, &dto.PersonRecordResponse{
			Id:   r.Id,
			Data: data,
		})
	}
	return response, nil
}

func (s *recordService) DeleteDataset(ctx context.Context, orgId, datasetId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dataset, err := uow.PersonDatasetRepository().FindOne(ctx,
		specification.ByID{ID: datasetId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return err
	}
	if dataset == nil {
		return errors.New("dataset not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PersonRecordRepository().DeleteByDatasetId(ctx, datasetId); err != nil {
		return err
	}
	if err := uow.PersonDatasetRepository().Delete(ctx, datasetId); err != nil {
		return err
	}

	return uow.Commit()
}
