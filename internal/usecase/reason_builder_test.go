package usecase

import (
	"reflect"
	"testing"

	"github.com/shopsense/backend/internal/domain"
)

func TestBuildReasons(t *testing.T) {
	builder := NewReasonBuilder()
	parser := NewIntentParser(false)
	catalog := testCatalog()

	t.Run("applies reasons in fixed order", func(t *testing.T) {
		intent := parser.Parse("apple phone under $700")
		reasons := builder.BuildReasons(catalog[:1], intent)

		want := []string{
			"Under your budget ($700)",
			"Matches requested category (Smartphone)",
			"Brand matches (Apple)",
			"High rating (4.5/5)",
			"Relevant keywords: phone",
		}
		if !reflect.DeepEqual(reasons[1], want) {
			t.Errorf("reasons = %v, want %v", reasons[1], want)
		}
	})

	t.Run("lists only the matched feature subset", func(t *testing.T) {
		intent := parser.Parse("5g camera bluetooth")
		reasons := builder.BuildReasons(catalog[:1], intent)

		var featureReason string
		for _, r := range reasons[1] {
			if len(r) > 13 && r[:13] == "Has features:" {
				featureReason = r
			}
		}
		if featureReason != "Has features: 5g, camera" {
			t.Errorf("feature reason = %q, want %q", featureReason, "Has features: 5g, camera")
		}
	})

	t.Run("keywords are capped at three", func(t *testing.T) {
		intent := parser.Parse("latest advanced camera system connectivity")
		reasons := builder.BuildReasons(catalog[:1], intent)

		last := reasons[1][len(reasons[1])-1]
		if last != "Relevant keywords: latest, advanced, camera" {
			t.Errorf("keyword reason = %q, want first three matched terms", last)
		}
	})

	t.Run("item with no applicable reason gets an empty list", func(t *testing.T) {
		item := domain.Product{ID: 42, Name: "Widget", Category: "Misc", Rating: 3.0}
		reasons := builder.BuildReasons([]domain.Product{item}, parser.Parse("zzz"))

		got, ok := reasons[42]
		if !ok {
			t.Fatal("item missing from reasons map")
		}
		if len(got) != 0 {
			t.Errorf("reasons = %v, want empty", got)
		}
	})

	t.Run("no reason with a false trigger", func(t *testing.T) {
		intent := parser.Parse("sony laptop under $400")
		reasons := builder.BuildReasons(catalog, intent)

		// iPhone: over budget, wrong category, wrong brand
		for _, r := range reasons[1] {
			switch r {
			case "Under your budget ($400)", "Matches requested category (Smartphone)", "Brand matches (Apple)":
				t.Errorf("reason %q has a false trigger", r)
			}
		}
	})
}
