package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/models"
)

// Published TACO table (4th edition), semicolon-separated CSV.
const tacoTableURL = "https://www.nepa.unicamp.br/taco/tabela/taco_4_edicao_2011.csv"

// TacoClient downloads the TACO food-composition table. The fetch is bound
// by the client timeout; there is no retry, a failed startup cycle falls
// back to the seed set and reattempts only on the next process start.
type TacoClient struct {
	url    string
	client *http.Client
}

func NewTacoClient() *TacoClient {
	return &TacoClient{
		url:    tacoTableURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTacoClientWithURL points the client at an alternative endpoint.
func NewTacoClientWithURL(url string) *TacoClient {
	c := NewTacoClient()
	c.url = url
	return c
}

// Fetch downloads and parses the table. Any transport, status or format
// problem is reported as ErrReferenceLoad.
func (c *TacoClient) Fetch(ctx context.Context) ([]models.FoodReference, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReferenceLoad, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReferenceLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: endpoint returned %d", ErrReferenceLoad, resp.StatusCode)
	}

	entries, err := parseTacoCSV(resp.Body)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// parseTacoCSV reads the semicolon-separated table. The header row names
// the columns; rows with unparseable numbers are skipped rather than
// failing the whole load.
func parseTacoCSV(r io.Reader) ([]models.FoodReference, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrReferenceLoad)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	nameIdx, ok := col["nome"]
	if !ok {
		return nil, fmt.Errorf("%w: header lacks 'nome' column", ErrReferenceLoad)
	}

	field := func(row []string, name string) float64 {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return 0
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(row[i]), ",", "."), 64)
		if err != nil {
			return 0
		}
		return v
	}

	var entries []models.FoodReference
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrReferenceLoad, err)
		}
		if nameIdx >= len(row) || strings.TrimSpace(row[nameIdx]) == "" {
			continue
		}
		entries = append(entries, models.FoodReference{
			Name:         strings.TrimSpace(row[nameIdx]),
			CaloriesKcal: field(row, "energia_kcal"),
			ProteinGrams: field(row, "proteina_g"),
			FatGrams:     field(row, "lipideos_g"),
			CarbGrams:    field(row, "carboidrato_g"),
			FiberGrams:   field(row, "fibra_g"),
			CalciumMg:    field(row, "calcio_mg"),
			IronMg:       field(row, "ferro_mg"),
		})
	}
	return entries, nil
}
