package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/poiesic/kazipot/core"
	"github.com/poiesic/kazipot/storage/badger"
)

// Sample catalogue covering the tourist regions, a few towns and their best
// known attractions. Enough to exercise every query shape the pipeline
// understands; a real deployment seeds from the scraper output instead.
var regions = []core.CatalogueEntry{
	{Name: "Gorenjska", Type: "regije", RegionName: "gorenjska", Description: "Alpska regija z Julijskimi Alpami in Triglavskim narodnim parkom"},
	{Name: "Dolenjska", Type: "regije", RegionName: "dolenjska", Description: "Gričevnata regija ob reki Krki, znana po zidanicah in gradovih"},
	{Name: "Primorska", Type: "regije", RegionName: "primorska", Description: "Obmorska regija s Krasom, vinogradi in slovensko obalo"},
	{Name: "Osrednja Slovenija", Type: "regije", RegionName: "osrednja slovenija", Description: "Osrednja regija okoli prestolnice"},
}

var towns = []core.CatalogueEntry{
	{Name: "Bled", Type: "mesto", RegionName: "gorenjska", Destination: "bled", Place: "bled", Description: "Alpsko letovišče ob ledeniškem jezeru z otokom"},
	{Name: "Bohinj", Type: "mesto", RegionName: "gorenjska", Destination: "bohinj", Place: "bohinj", Description: "Dolina z največjim slovenskim jezerom"},
	{Name: "Kranjska Gora", Type: "mesto", RegionName: "gorenjska", Destination: "kranjska gora", Place: "kranjska gora", Description: "Gorsko smučarsko središče pod Vitrancem"},
	{Name: "Ljubljana", Type: "mesto", RegionName: "osrednja slovenija", Destination: "ljubljana", Place: "ljubljana", Description: "Glavno mesto Slovenije ob Ljubljanici"},
	{Name: "Novo mesto", Type: "mesto", RegionName: "dolenjska", Destination: "novo mesto", Place: "novo mesto", Description: "Središče Dolenjske na okljuku reke Krke"},
	{Name: "Otočec", Type: "mesto", RegionName: "dolenjska", Destination: "novo mesto", Place: "otočec", Description: "Naselje ob Krki z gradom na rečnem otoku"},
	{Name: "Piran", Type: "mesto", RegionName: "primorska", Destination: "portorož", Place: "piran", Description: "Beneško obalno mesto na koncu polotoka"},
	{Name: "Postojna", Type: "mesto", RegionName: "primorska", Destination: "postojna", Place: "postojna", Description: "Kraško mesto ob svetovno znani jami"},
	{Name: "Predjama", Type: "mesto", RegionName: "primorska", Destination: "postojna", Place: "predjama", Description: "Vasica pod 123 metrov visoko previsno steno"},
}

var attractions = []core.CatalogueEntry{
	{
		Name: "Blejski grad", Type: "grad", RegionName: "gorenjska", Destination: "bled", Place: "bled",
		Tags:        "grad, zgodovina, razgled",
		Description: "Srednjeveški grad na 130 metrov visoki skali nad Blejskim jezerom",
		Link:        "https://www.slovenia.info/sl/blejski-grad",
	},
	{
		Name: "Blejsko jezero", Type: "jezero", RegionName: "gorenjska", Destination: "bled", Place: "bled",
		Tags:        "jezero, narava, pletna",
		Description: "Ledeniško jezero z edinim slovenskim otokom in cerkvijo na njem",
		IsTopResult: true,
	},
	{
		Name: "Bohinjsko jezero", Type: "jezero", RegionName: "gorenjska", Destination: "bohinj", Place: "bohinj",
		Tags:        "jezero, narava",
		Description: "Največje stalno slovensko jezero v Triglavskem narodnem parku",
	},
	{
		Name: "Slap Savica", Type: "biseri", RegionName: "gorenjska", Destination: "bohinj", Place: "bohinj",
		Tags:        "slap, narava",
		Description: "Znameniti slap v dveh krakih, izvir Save Bohinjke",
	},
	{
		Name: "Ljubljanski grad", Type: "vredno ogleda", RegionName: "osrednja slovenija", Destination: "ljubljana", Place: "ljubljana",
		Tags:        "grad, zgodovina, razgled",
		Description: "Grajska utrdba na griču nad mestom, dostopna z vzpenjačo",
		Link:        "https://www.slovenia.info/sl/ljubljanski-grad",
	},
	{
		Name: "Tromostovje", Type: "vredno ogleda", RegionName: "osrednja slovenija", Destination: "ljubljana", Place: "ljubljana",
		Tags:        "arhitektura, plečnik",
		Description: "Plečnikovo trojno mostovje čez Ljubljanico v središču mesta",
	},
	{
		Name: "Grad Otočec", Type: "grad", RegionName: "dolenjska", Destination: "novo mesto", Place: "otočec",
		Tags:        "grad, reka krka",
		Description: "Edini vodni grad v Sloveniji, postavljen na otoku sredi Krke",
	},
	{
		Name: "Grad Žužemberk", Type: "grad", RegionName: "dolenjska", Destination: "dolenjska", Place: "žužemberk",
		Tags:        "grad, zgodovina",
		Description: "Mogočen grad z okroglimi stolpi nad dolino Krke",
	},
	{
		Name: "Turistična kmetija Pri Martinu", Type: "kmetije", RegionName: "dolenjska", Destination: "novo mesto", Place: "novo mesto",
		Tags:        "kmetija, kulinarika",
		Description: "Domača hrana in cviček na gričih nad dolino Krke",
	},
	{
		Name: "Postojnska jama", Type: "jama", RegionName: "primorska", Destination: "postojna", Place: "postojna",
		Tags:        "jama, kras, vlakec",
		Description: "Najbolj obiskana kraška jama v Evropi z jamskim vlakcem",
		Link:        "https://www.slovenia.info/sl/postojnska-jama",
		IsTopResult: true,
	},
	{
		Name: "Predjamski grad", Type: "grad", RegionName: "primorska", Destination: "postojna", Place: "predjama",
		Tags:        "grad, jama, erazem",
		Description: "Največji jamski grad na svetu, sezidan v previsno steno",
	},
	{
		Name: "Škocjanske jame", Type: "jama", RegionName: "primorska", Destination: "kras", Place: "škocjan",
		Tags:        "jama, kras, unesco",
		Description: "Jamski splet z ogromno podzemno sotesko na Unescovem seznamu",
	},
	{
		Name: "Piranske soline", Type: "biseri", RegionName: "primorska", Destination: "portorož", Place: "piran",
		Tags:        "soline, morje",
		Description: "Stoletja stare soline v Sečoveljskem krajinskem parku",
	},
}

func main() {
	dbPath := flag.String("catalogue", "./data/catalogue", "path to the BadgerDB catalogue directory")
	townsPath := flag.String("towns", "./data/towns.txt", "path for the generated town gazetteer file")
	flag.Parse()

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogueRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	ctx := context.Background()

	total := 0
	for _, batch := range []struct {
		kind    core.KindTag
		entries []core.CatalogueEntry
	}{
		{core.KindRegion, regions},
		{core.KindTown, towns},
		{core.KindAttraction, attractions},
	} {
		prepared := make([]*core.CatalogueEntry, len(batch.entries))
		for i := range batch.entries {
			entry := batch.entries[i]
			entry.Kind = batch.kind
			// Content-addressed IDs keep reseeding idempotent.
			entry.Id = core.IDFromContent(batch.kind.String() + "/" + entry.Name)
			prepared[i] = &entry
		}
		if _, err := repo.AddEntries(ctx, prepared...); err != nil {
			panic(err)
		}
		total += len(prepared)
	}

	if err := writeGazetteer(*townsPath); err != nil {
		panic(err)
	}

	slog.Info("catalogue seeded", "entries", total, "catalogue", *dbPath, "towns", *townsPath)
}

// writeGazetteer writes the sorted lowercase town names, one per line.
func writeGazetteer(path string) error {
	names := make([]string, 0, len(towns))
	for _, town := range towns {
		names = append(names, strings.ToLower(town.Name))
	}
	sort.Strings(names)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# Town gazetteer, generated by the seeder.")
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
