package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/repositories"
	apperrors "game-api/pkg/errors"
)

// bulkTables lists the tables accepted by the spreadsheet upload, keyed by route name.
var bulkTables = map[string]repositories.BulkTable{
	"cargos": {
		Name:    "cargo",
		Key:     "id",
		Columns: map[string]bool{"id": true, "descripcion": false},
		Serial:  true,
	},
	"personas": {
		Name:    "persona",
		Key:     "identificacion",
		Columns: map[string]bool{"identificacion": true, "nombres": false, "cargo_id": true},
	},
	"equipos": {
		Name:   "equipo",
		Key:    "id",
		Serial: true,
		Columns: map[string]bool{
			"id": true, "nombre": false, "ubicacion": false, "imagen": false,
			"subsistema_id": true, "tipo_activo_id": true, "fabricante_id": true, "modelo_id": true,
		},
	},
}

type BulkUploadServiceInterface interface {
	Upload(ctx context.Context, table string, file io.Reader) (*dto.BulkUploadResultDTO, error)
}

type BulkUploadService struct {
	repo      repositories.BulkRepositoryInterface
	txManager repositories.TxManagerInterface
	hierarchy HierarchyCacheInterface
	logger    *zap.Logger
}

func NewBulkUploadService(
	repo repositories.BulkRepositoryInterface,
	txManager repositories.TxManagerInterface,
	hierarchy HierarchyCacheInterface,
	logger *zap.Logger,
) BulkUploadServiceInterface {
	return &BulkUploadService{repo: repo, txManager: txManager, hierarchy: hierarchy, logger: logger}
}

func (s *BulkUploadService) Upload(ctx context.Context, table string, file io.Reader) (*dto.BulkUploadResultDTO, error) {
	target, ok := bulkTables[table]
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("La tabla '%s' no está soportada.", table))
	}

	header, records, err := readFirstSheet(file)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "No se pudo leer el archivo Excel", err, nil)
	}

	rows, used := buildBulkRows(target, header, records)
	if len(used) == 0 {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf(
			"El archivo no contiene columnas válidas para la tabla '%s'. Esperadas: %s",
			table, strings.Join(sortedKeys(target.Columns), ", ")))
	}

	var inserted, skipped int
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, skipped, err = s.repo.InsertRows(ctx, tx, target, rows)
		return err
	})
	if err != nil {
		s.logger.Error("error en cargue masivo", zap.String("tabla", table), zap.Error(err))
		var httpErr *apperrors.HttpError
		if errors.As(err, &httpErr) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("Error procesando el archivo: "+err.Error(), err)
	}

	if table == "equipos" {
		s.hierarchy.Invalidate(ctx)
	}
	s.logger.Info("cargue masivo completado",
		zap.String("tabla", table), zap.Int("insertados", inserted), zap.Int("omitidos", skipped))

	return &dto.BulkUploadResultDTO{
		Message:     fmt.Sprintf("Cargue exitoso en '%s'", table),
		Inserted:    inserted,
		Skipped:     skipped,
		ColumnsUsed: used,
	}, nil
}

func readFirstSheet(file io.Reader) ([]string, [][]string, error) {
	book, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, err
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return header, rows[1:], nil
}

// buildBulkRows keeps the known columns, drops empty cells and converts integer columns.
// Values that do not parse as integers are passed through unchanged.
func buildBulkRows(target repositories.BulkTable, header []string, records [][]string) ([]map[string]interface{}, []string) {
	used := make([]string, 0, len(header))
	for _, h := range header {
		if _, ok := target.Columns[h]; ok {
			used = append(used, h)
		}
	}
	if len(used) == 0 {
		return nil, nil
	}

	rows := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{})
		for i, h := range header {
			isInt, ok := target.Columns[h]
			if !ok || i >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[i])
			if cell == "" {
				continue
			}
			if isInt {
				if n, err := strconv.ParseInt(strings.TrimSuffix(cell, ".0"), 10, 64); err == nil {
					row[h] = n
					continue
				}
			}
			row[h] = cell
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, used
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
