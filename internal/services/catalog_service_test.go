package services_test

import (
	"errors"
	"testing"

	"closetluna/internal/domain"
	"closetluna/internal/repos"
	"closetluna/internal/services"
)

func sampleItems() []domain.ClothingItem {
	return []domain.ClothingItem{
		{ID: "1", Name: "Blusa Elegante Rosa", Description: "Blusa de encaje", Category: "Blusas", Size: "M"},
		{ID: "2", Name: "Top Naranja Bohemio", Description: "Top con escote en V", Category: "Tops", Size: "S"},
		{ID: "3", Name: "Vestido Floral", Description: "Estampado floral multicolor", Category: "Vestidos", Size: "L"},
		{ID: "4", Name: "Blusa Romántica", Description: "Detalles de encaje", Category: "Blusas", Size: "S"},
	}
}

func TestFilterNoCriteriaReturnsAllInOrder(t *testing.T) {
	items := sampleItems()
	got := services.Filter(items, "", "all", "all")
	if len(got) != len(items) {
		t.Fatalf("want %d items, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Fatalf("order changed at %d: want %s, got %s", i, items[i].ID, got[i].ID)
		}
	}
}

func TestFilterSearchTermCaseInsensitive(t *testing.T) {
	got := services.Filter(sampleItems(), "ENCAJE", "all", "all")
	if len(got) != 2 {
		t.Fatalf("want 2 matches on description, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "4" {
		t.Fatalf("unexpected matches: %+v", got)
	}

	got = services.Filter(sampleItems(), "vestido", "all", "all")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("want name match on item 3, got %+v", got)
	}
}

func TestFilterNoMatchReturnsEmpty(t *testing.T) {
	got := services.Filter(sampleItems(), "zapatos", "all", "all")
	if len(got) != 0 {
		t.Fatalf("want empty result, got %d", len(got))
	}
}

func TestFilterCategoryAndSizeExactMatch(t *testing.T) {
	got := services.Filter(sampleItems(), "", "Blusas", "all")
	if len(got) != 2 {
		t.Fatalf("want 2 blusas, got %d", len(got))
	}
	got = services.Filter(sampleItems(), "", "Blusas", "S")
	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("want only item 4, got %+v", got)
	}
	// category match is exact, not substring
	got = services.Filter(sampleItems(), "", "Blusa", "all")
	if len(got) != 0 {
		t.Fatalf("partial category should not match, got %d", len(got))
	}
}

func TestFilterOptionsFromFullSet(t *testing.T) {
	cats, sizes := services.FilterOptions(sampleItems())
	wantCats := []string{"all", "Blusas", "Tops", "Vestidos"}
	if len(cats) != len(wantCats) {
		t.Fatalf("want %v, got %v", wantCats, cats)
	}
	for i := range wantCats {
		if cats[i] != wantCats[i] {
			t.Fatalf("want %v, got %v", wantCats, cats)
		}
	}
	wantSizes := []string{"all", "M", "S", "L"}
	for i := range wantSizes {
		if sizes[i] != wantSizes[i] {
			t.Fatalf("want %v, got %v", wantSizes, sizes)
		}
	}
}

func TestGetItemNotFound(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	svc := services.NewCatalogService(repos.NewItemRepo(db))

	if _, err := svc.GetItem("no-such-item"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound, got %v", err)
	}

	it, err := svc.GetItem("3")
	if err != nil {
		t.Fatal(err)
	}
	if it.Name != "Vestido Floral" || !it.Available {
		t.Fatalf("unexpected seeded item: %+v", it)
	}
}
