package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		ctx  Context
		want string
	}{
		{
			name: "missing value left verbatim",
			tpl:  "Hola {name}, el precio es {price}",
			ctx:  Context{"name": "Acme"},
			want: "Hola Acme, el precio es {price}",
		},
		{
			name: "upper-case placeholder",
			tpl:  "Abrimos {HOURS}",
			ctx:  Context{"hours": "9 a 18"},
			want: "Abrimos 9 a 18",
		},
		{
			name: "mixed-case key",
			tpl:  "Estamos en {address}",
			ctx:  func() Context { c := Context{}; c.Set("Address", "San Martín 123"); return c }(),
			want: "Estamos en San Martín 123",
		},
		{
			name: "empty value counts as absent",
			tpl:  "Pagos: {payment_methods}",
			ctx:  Context{"payment_methods": ""},
			want: "Pagos: {payment_methods}",
		},
		{
			name: "not an identifier",
			tpl:  "Promo {2x1} y {}",
			ctx:  Context{"2x1": "no"},
			want: "Promo {2x1} y {}",
		},
		{
			name: "repeated placeholder",
			tpl:  "{name} - {name}",
			ctx:  Context{"name": "Acme"},
			want: "Acme - Acme",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fill(tt.tpl, tt.ctx))
		})
	}
}

func TestFill_NilContext(t *testing.T) {
	assert.Equal(t, "Hola {name}", Fill("Hola {name}", nil))
}

func TestPlaceholdersAndReferences(t *testing.T) {
	tpl := "El {Product_Name} cuesta {price}. {product_name} tiene {stock} unidades"

	assert.Equal(t, []string{"product_name", "price", "stock"}, Placeholders(tpl))
	assert.True(t, References(tpl, "price"))
	assert.True(t, References(tpl, "PRODUCT_NAME"))
	assert.False(t, References(tpl, "date_time"))
	assert.Empty(t, Unresolved("Abrimos 9 a 18"))
	assert.Equal(t, []string{"date_time"}, Unresolved("Te espero el {date_time}"))
}
