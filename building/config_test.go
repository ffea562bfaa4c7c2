package building

import (
	"testing"

	"github.com/signalnine/townscore/board"
)

func TestSetAndVariant(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Set(board.Magenta, "Barrett-Castle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Magenta != BarrettCastle {
		t.Errorf("expected barrett castle, got %s", cfg.Magenta)
	}
	if got := cfg.Variant(board.Red); got != "farm" {
		t.Errorf("expected farm, got %s", got)
	}

	if err := cfg.Set(board.Red, "windmill"); err == nil {
		t.Error("expected error for unknown red building")
	}
}

func TestCodesRoundTrip(t *testing.T) {
	cfg := Config{
		Black:   Warehouse,
		Blue:    Cottage,
		Gray:    Fountain,
		Green:   FeastHall,
		Magenta: TheStarloom,
		Orange:  Temple,
		Red:     Greenhouse,
		Yellow:  Tailor,
	}
	if got := FromCodes(cfg.Codes()); got != cfg {
		t.Errorf("expected %v, got %v", cfg, got)
	}
}

func TestValidate(t *testing.T) {
	if errs := DefaultConfig().Validate(); len(errs) != 0 {
		t.Errorf("default config should be valid, got %v", errs)
	}

	cfg := DefaultConfig()
	cfg.Red = RedVariant(9)
	cfg.Magenta = MagentaVariant(15)
	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "buildings.magenta" {
		t.Errorf("expected magenta error first, got %s", errs[0].Field)
	}
}
