// Package upload orquesta la carga de libros: decodificar, normalizar, aplicar la
// política de errores y persistir el lote.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-ingest/internal/application/dto"
	"github.com/jhoicas/retail-ingest/internal/domain"
	"github.com/jhoicas/retail-ingest/internal/domain/entity"
	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

// Eventos de log del ciclo de vida de una carga.
const (
	EventStarted  = "upload.started"
	EventRejected = "upload.rejected"
	EventSuccess  = "upload.success"
	EventFailure  = "upload.failure"
)

// DefaultMaxReportedErrors errores de fila devueltos al rechazar una carga.
const DefaultMaxReportedErrors = 10

// Config política de carga.
type Config struct {
	// ExcludedStores lista negra de tiendas; nil usa la lista por defecto.
	ExcludedStores []string
	// RejectOnErrors rechaza la carga entera si alguna fila se rechaza.
	RejectOnErrors bool
	// MaxReportedErrors máximo de errores en ValidationError; <= 0 usa DefaultMaxReportedErrors.
	MaxReportedErrors int
}

// ValidationError la carga tiene filas rechazadas y la política exige rechazarla.
type ValidationError struct {
	Details []string
	Total   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación fallida: %d filas rechazadas", e.Total)
}

// Input datos de una carga.
type Input struct {
	UserID    string
	CompanyID string
	FileName  string
	File      io.Reader
	// DryRun normaliza y devuelve el resultado sin persistir.
	DryRun bool
}

// Output resultado de una carga. Upload es nil en simulación.
type Output struct {
	Upload *entity.Upload
	Result ingest.Result
}

// UseCase casos de uso de cargas.
type UseCase struct {
	decoder    Decoder
	pipeline   *ingest.Pipeline
	txRunner   TxRunner
	uploadRepo repository.UploadRepository
	cfg        Config
	log        zerolog.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(decoder Decoder, txRunner TxRunner, uploadRepo repository.UploadRepository, cfg Config, log zerolog.Logger) *UseCase {
	if cfg.MaxReportedErrors <= 0 {
		cfg.MaxReportedErrors = DefaultMaxReportedErrors
	}
	return &UseCase{
		decoder:    decoder,
		pipeline:   ingest.NewPipeline(ingest.Options{ExcludedStores: cfg.ExcludedStores}),
		txRunner:   txRunner,
		uploadRepo: uploadRepo,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

// Ingest decodifica el archivo, lo normaliza y persiste el lote en una sola transacción.
// Devuelve domain.ErrUnsupportedFile, domain.ErrEmptyUpload o *ValidationError sin
// tocar la BD.
func (uc *UseCase) Ingest(ctx context.Context, in Input) (*Output, error) {
	if in.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.File == nil {
		return nil, domain.ErrInvalidInput
	}
	log := uc.log.With().Str("user_id", in.UserID).Str("file_name", in.FileName).Logger()
	log.Info().Bool("dry_run", in.DryRun).Msg(EventStarted)

	ds, err := uc.decoder.Decode(in.File)
	if err != nil {
		log.Warn().Err(err).Msg(EventFailure)
		return nil, err
	}
	if ds.IsEmpty() {
		log.Warn().Err(domain.ErrEmptyUpload).Msg(EventFailure)
		return nil, domain.ErrEmptyUpload
	}

	res := uc.pipeline.ValidateAndNormalize(ds)
	if uc.cfg.RejectOnErrors && len(res.Errors) > 0 {
		n := min(len(res.Errors), uc.cfg.MaxReportedErrors)
		log.Info().Int("errors", len(res.Errors)).Msg(EventRejected)
		return nil, &ValidationError{Details: append([]string(nil), res.Errors[:n]...), Total: len(res.Errors)}
	}
	if in.DryRun {
		log.Info().
			Int("sales", len(res.Sales)).
			Int("products", len(res.Products)).
			Int("transfers", len(res.Transfers)).
			Int("warnings", len(res.Errors)).
			Msg("upload.dry_run")
		return &Output{Result: res}, nil
	}

	u := &entity.Upload{
		ID:            uuid.New().String(),
		UserID:        in.UserID,
		CompanyID:     in.CompanyID,
		FileName:      in.FileName,
		SalesCount:    len(res.Sales),
		ProductsCount: len(res.Products),
		TransferCount: len(res.Transfers),
		WarningCount:  len(res.Errors),
		CreatedAt:     uc.now(),
	}
	err = uc.txRunner.Run(ctx, func(
		uploadRepo repository.UploadRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		transferRepo repository.TransferRepository,
	) error {
		if err := uploadRepo.Create(ctx, u); err != nil {
			return err
		}
		if _, err := saleRepo.InsertBatch(ctx, u.ID, u.UserID, res.Sales); err != nil {
			return err
		}
		if _, err := productRepo.InsertBatch(ctx, u.ID, u.UserID, res.Products); err != nil {
			return err
		}
		_, err := transferRepo.InsertBatch(ctx, u.ID, u.UserID, res.Transfers)
		return err
	})
	if err != nil {
		log.Error().Err(err).Msg(EventFailure)
		return nil, fmt.Errorf("persistir carga: %w", err)
	}

	log.Info().
		Str("upload_id", u.ID).
		Int("sales", u.SalesCount).
		Int("products", u.ProductsCount).
		Int("transfers", u.TransferCount).
		Int("warnings", u.WarningCount).
		Msg(EventSuccess)
	return &Output{Upload: u, Result: res}, nil
}

// List lotes del usuario, del más reciente al más antiguo.
func (uc *UseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.UploadListResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	page = page.Normalize()
	list, err := uc.uploadRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UploadSummary, 0, len(list))
	for _, u := range list {
		items = append(items, toUploadSummary(u))
	}
	return &dto.UploadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Get resumen de un lote del usuario. Un lote ajeno se trata como inexistente.
func (uc *UseCase) Get(ctx context.Context, userID, uploadID string) (*dto.UploadSummary, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if uploadID == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.uploadRepo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.UserID != userID {
		return nil, domain.ErrNotFound
	}
	out := toUploadSummary(u)
	return &out, nil
}

// Delete borra un lote del usuario con todas sus filas.
func (uc *UseCase) Delete(ctx context.Context, userID, uploadID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if uploadID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.uploadRepo.Delete(ctx, uploadID, userID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Str("upload_id", uploadID).Msg("borrar carga")
		}
		return err
	}
	uc.log.Info().Str("user_id", userID).Str("upload_id", uploadID).Msg("upload.deleted")
	return nil
}

// DeleteAll borra todas las cargas del usuario.
func (uc *UseCase) DeleteAll(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, domain.ErrUnauthorized
	}
	n, err := uc.uploadRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Str("user_id", userID).Int64("deleted", n).Msg("upload.deleted_all")
	return n, nil
}

// ToUploadResponse respuesta HTTP de una carga persistida.
func ToUploadResponse(out *Output) dto.UploadResponse {
	warnings := out.Result.Errors
	if warnings == nil {
		warnings = []string{}
	}
	resp := dto.UploadResponse{
		Sales:     len(out.Result.Sales),
		Products:  len(out.Result.Products),
		Transfers: len(out.Result.Transfers),
		Warnings:  warnings,
	}
	if out.Upload != nil {
		resp.UploadID = out.Upload.ID
	}
	return resp
}

func toUploadSummary(u *entity.Upload) dto.UploadSummary {
	return dto.UploadSummary{
		ID:        u.ID,
		FileName:  u.FileName,
		Sales:     u.SalesCount,
		Products:  u.ProductsCount,
		Transfers: u.TransferCount,
		Warnings:  u.WarningCount,
		CreatedAt: u.CreatedAt,
	}
}
