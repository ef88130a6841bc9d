package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/core/textnorm"
	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

func products() []models.Product {
	// newest first, as the store returns them
	return []models.Product{
		{ID: 4, Name: "Mouse"},
		{ID: 3, Name: "Notebook Lenovo IdeaPad"},
		{ID: 2, Name: "Notebook"},
		{ID: 1, Name: "Cámara"},
	}
}

func TestBestMatch(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"tenés la notebook?", "Notebook Lenovo IdeaPad"},
		{"precio de la camara", "Cámara"},
		{"quiero un mouse", "Mouse"},
		{"la lenovo cuanto sale", "Notebook Lenovo IdeaPad"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := BestMatch(products(), textnorm.Normalize(tt.msg))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestBestMatch_NoMatch(t *testing.T) {
	assert.Nil(t, BestMatch(products(), textnorm.Normalize("hola, que tal")))
	assert.Nil(t, BestMatch(nil, "notebook"))
	assert.Nil(t, BestMatch([]models.Product{{Name: "  "}}, "algo"))
}

func TestBestMatch_ShortTokensIgnored(t *testing.T) {
	items := []models.Product{{ID: 1, Name: "TV LG 55"}}
	assert.Nil(t, BestMatch(items, "tv nuevo"))
	assert.NotNil(t, BestMatch(items, "el tv lg 55 pulgadas"))
}

func TestNamesAndPrice(t *testing.T) {
	assert.Equal(t, []string{"Mouse", "Notebook Lenovo IdeaPad"}, Names(products(), 2))
	assert.Len(t, Names(products(), 0), 4)
	assert.Equal(t, "1500", FormatPrice(1500))
	assert.Equal(t, "99.9", FormatPrice(99.90))
}
