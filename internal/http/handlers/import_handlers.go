package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

type csvRow struct {
	Category string
	Name     string
	Price    int
	Unit     string
	Location string
	Detail   string
	Stock    int
}

// csvHeaders maps the spreadsheet column names (Indonesian, as exported
// from the warung's stock sheet) to row fields.
var csvHeaders = []string{"kategori", "nama", "harga", "satuan", "lokasi", "detail", "stok"}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"nama", "harga"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Category: field(record, "kategori"),
			Name:     field(record, "nama"),
			Price:    parsePrice(field(record, "harga")),
			Unit:     field(record, "satuan"),
			Location: field(record, "lokasi"),
			Detail:   field(record, "detail"),
			Stock:    parseInt(field(record, "stok")),
		})
	}
	return rows, nil
}

// parsePrice tolerates formatted amounts like "Rp1.000" by dropping every
// non-digit character.
func parsePrice(s string) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	v, _ := strconv.Atoi(digits.String())
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.Price <= 0 {
		return errors.New("invalid price")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	return nil
}

func nowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Bulk-loads catalog rows from the warung stock sheet (kategori, nama, harga, satuan, lokasi, detail, stok)
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var imported int
	errorsList := []ProductValidationError{}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		if rec.Unit == "" {
			rec.Unit = models.DefaultUnit
		}

		existing, err := productRepo.GetByName(rec.Name)
		if err == nil && existing.ID != 0 {
			if mode == "skip" {
				errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: product '%s' already exists", rowNum, rec.Name)})
				continue
			}
			existing.Category = rec.Category
			existing.Price = rec.Price
			existing.Unit = rec.Unit
			existing.Location = rec.Location
			existing.Detail = rec.Detail
			existing.Stock = rec.Stock
			existing.UpdatedAt = nowRFC3339()
			if _, err := productRepo.Update(existing); err != nil {
				errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, rec.Name)})
				continue
			}
			imported++
			continue
		}

		newProduct := models.Product{
			Name:      rec.Name,
			Price:     rec.Price,
			Unit:      rec.Unit,
			Category:  rec.Category,
			Location:  rec.Location,
			Detail:    rec.Detail,
			Stock:     rec.Stock,
			CreatedAt: nowRFC3339(),
			UpdatedAt: nowRFC3339(),
		}
		if _, err := productRepo.Create(newProduct); err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}

	invalidateCategoryCache()
	_ = writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
