package usecase

import (
	"reflect"
	"testing"
)

func TestParse_Terms(t *testing.T) {
	p := NewIntentParser(false)

	testCases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "splits on non-alphanumeric characters",
			text: "cheap phone, good camera!",
			want: []string{"cheap", "phone", "good", "camera"},
		},
		{
			name: "dedupes while preserving first-seen order",
			text: "phone phone cheap phone",
			want: []string{"phone", "cheap"},
		},
		{
			name: "keeps dollar amounts as tokens",
			text: "phone under $500",
			want: []string{"phone", "under", "$500"},
		},
		{
			name: "empty input yields no terms",
			text: "",
			want: nil,
		},
		{
			name: "punctuation-only input yields no terms",
			text: "!!! ???",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.text)
			if !reflect.DeepEqual(got.Terms, tc.want) {
				t.Errorf("Terms = %v, want %v", got.Terms, tc.want)
			}
		})
	}
}

func TestParse_MaxPrice(t *testing.T) {
	p := NewIntentParser(false)

	testCases := []struct {
		name      string
		text      string
		wantPrice int
		wantSet   bool
	}{
		{name: "dollar pattern", text: "phone under $500", wantPrice: 500, wantSet: true},
		{name: "under without dollar sign", text: "laptop under 900", wantPrice: 900, wantSet: true},
		{name: "below", text: "something below 250", wantPrice: 250, wantSet: true},
		{name: "less than", text: "tablet less than 450", wantPrice: 450, wantSet: true},
		{name: "lte operator", text: "headphones <= 300", wantPrice: 300, wantSet: true},
		{name: "dollar pattern wins over word pattern", text: "under 900 but ideally $500", wantPrice: 500, wantSet: true},
		{name: "single digit is ignored", text: "phone under $5", wantPrice: 0, wantSet: false},
		{name: "no price", text: "a nice phone", wantPrice: 0, wantSet: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.text)
			if got.HasMaxPrice != tc.wantSet {
				t.Fatalf("HasMaxPrice = %v, want %v", got.HasMaxPrice, tc.wantSet)
			}
			if got.MaxPrice != tc.wantPrice {
				t.Errorf("MaxPrice = %d, want %d", got.MaxPrice, tc.wantPrice)
			}
		})
	}
}

func TestParse_Categories(t *testing.T) {
	p := NewIntentParser(false)

	t.Run("phone query fires the phones rule", func(t *testing.T) {
		intent := p.Parse("phone under $500")
		if len(intent.DesiredCategories) != 1 {
			t.Fatalf("DesiredCategories = %d rules, want 1", len(intent.DesiredCategories))
		}
		if intent.DesiredCategories[0].Name != "phones" {
			t.Errorf("rule = %s, want phones", intent.DesiredCategories[0].Name)
		}
		if !intent.MatchesDesiredCategory("Smartphone") {
			t.Error("expected Smartphone to match the phones rule")
		}
	})

	t.Run("overlapping triggers fire the rule only once", func(t *testing.T) {
		intent := p.Parse("a mobile phone, any smartphone")
		if len(intent.DesiredCategories) != 1 {
			t.Errorf("DesiredCategories = %d rules, want 1", len(intent.DesiredCategories))
		}
	})

	t.Run("multiple categories appear in table order", func(t *testing.T) {
		intent := p.Parse("ipad or laptop")
		if len(intent.DesiredCategories) != 2 {
			t.Fatalf("DesiredCategories = %d rules, want 2", len(intent.DesiredCategories))
		}
		if intent.DesiredCategories[0].Name != "laptops" || intent.DesiredCategories[1].Name != "tablets" {
			t.Errorf("rules = [%s, %s], want [laptops, tablets] (table order)",
				intent.DesiredCategories[0].Name, intent.DesiredCategories[1].Name)
		}
	})

	t.Run("earbuds fire the headphones rule", func(t *testing.T) {
		intent := p.Parse("wireless earbuds")
		if len(intent.DesiredCategories) != 1 || intent.DesiredCategories[0].Name != "headphones" {
			t.Fatalf("expected the headphones rule, got %v", intent.DesiredCategories)
		}
		if !intent.MatchesDesiredCategory("Earbuds") {
			t.Error("expected Earbuds to match the headphones rule")
		}
	})
}

func TestParse_Brands(t *testing.T) {
	p := NewIntentParser(false)

	t.Run("detects a single brand", func(t *testing.T) {
		intent := p.Parse("Apple products")
		if !reflect.DeepEqual(intent.DesiredBrands, []string{"apple"}) {
			t.Errorf("DesiredBrands = %v, want [apple]", intent.DesiredBrands)
		}
	})

	t.Run("detects multiple brands", func(t *testing.T) {
		intent := p.Parse("samsung or sony")
		if !reflect.DeepEqual(intent.DesiredBrands, []string{"samsung", "sony"}) {
			t.Errorf("DesiredBrands = %v, want [samsung, sony]", intent.DesiredBrands)
		}
	})

	t.Run("no brand yields empty set", func(t *testing.T) {
		intent := p.Parse("cheap phone")
		if len(intent.DesiredBrands) != 0 {
			t.Errorf("DesiredBrands = %v, want empty", intent.DesiredBrands)
		}
	})
}

func TestParse_Features(t *testing.T) {
	p := NewIntentParser(false)

	intent := p.Parse("wireless headphones with noise cancelling and bluetooth")
	want := []string{"wireless", "noise cancelling", "bluetooth"}
	if !reflect.DeepEqual(intent.DesiredFeatures, want) {
		t.Errorf("DesiredFeatures = %v, want %v", intent.DesiredFeatures, want)
	}
}

func TestParse_Deterministic(t *testing.T) {
	p := NewIntentParser(false)

	queries := []string{
		"phone under $500",
		"Apple products",
		"wireless earbuds with noise-cancelling below 300",
		"",
	}
	for _, q := range queries {
		first := p.Parse(q)
		second := p.Parse(q)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) not deterministic: %+v vs %+v", q, first, second)
		}
	}
}
