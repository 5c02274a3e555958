// Sombra — solar obstruction analyzer
//
// Computes the angular shadow map cast by surrounding buildings onto an
// observation point, reduces it to a minimal shadow list and reports the
// hours of direct sun the point receives.
//
// Build:
//   go build -o sombra ./cmd/sombra
//
// Typical runs:
//   sombra -site site.json -pdf report.pdf -xlsx shadows.xlsx -chart map.png
//   sombra -site site.json -csv buildings.csv -save
//   sombra -site site.json -date 2026-12-21

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jmoralesv/sombra/internal/engine"
	"github.com/jmoralesv/sombra/internal/export"
	"github.com/jmoralesv/sombra/internal/importer"
	"github.com/jmoralesv/sombra/internal/model"
	"github.com/jmoralesv/sombra/internal/project"
	"github.com/jmoralesv/sombra/internal/sun"
)

func main() {
	sitePath := flag.String("site", "", "site JSON file (default: ~/.sombra/site.json)")
	csvPath := flag.String("csv", "", "import buildings from a CSV file before analyzing")
	xlsxInPath := flag.String("xlsx-in", "", "import buildings from an Excel workbook before analyzing")
	dxfPath := flag.String("dxf", "", "import building footprints from a DXF drawing before analyzing")
	dxfHeight := flag.String("dxf-height", "II", "default height code for DXF footprints")
	save := flag.Bool("save", false, "save the site back after importing")
	pdfPath := flag.String("pdf", "", "write a PDF report to this path")
	xlsxPath := flag.String("xlsx", "", "write the shadow list as an Excel workbook to this path")
	chartPath := flag.String("chart", "", "write the shadow map as a PNG chart to this path")
	dateStr := flag.String("date", "", "report direct sun hours for this date (YYYY-MM-DD)")
	backupOut := flag.String("export-backup", "", "export config and site to a backup file and exit")
	backupIn := flag.String("import-backup", "", "restore config and site from a backup file and exit")
	flag.Parse()

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	if *backupIn != "" {
		restoreBackup(*backupIn, *sitePath)
		return
	}

	site, path := loadSite(*sitePath, config)

	imported := runImports(&site, *csvPath, *xlsxInPath, *dxfPath, *dxfHeight)
	if imported && *save {
		if err := project.SaveSite(path, site); err != nil {
			log.Fatalf("cannot save site: %v", err)
		}
		fmt.Printf("Saved %s\n", path)
	}

	if *backupOut != "" {
		if err := project.ExportAllData(*backupOut, config, []model.Site{site}); err != nil {
			log.Fatalf("cannot export backup: %v", err)
		}
		fmt.Printf("Backup written to %s\n", *backupOut)
		return
	}

	result := engine.New(site.Settings).Analyze(site)
	fmt.Printf("Site: %s\n", site.Name)
	fmt.Printf("Buildings: %d  Walls: %d  Raw shadows: %d  Reduced: %d\n",
		len(site.Buildings), result.WallCount, result.RawShadows, len(result.Shadows))

	if *dateStr != "" {
		reportSunHours(site, result, *dateStr)
	}

	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, site, result); err != nil {
			log.Fatalf("cannot write PDF: %v", err)
		}
		fmt.Printf("PDF report written to %s\n", *pdfPath)
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, site, result.Shadows); err != nil {
			log.Fatalf("cannot write workbook: %v", err)
		}
		fmt.Printf("Workbook written to %s\n", *xlsxPath)
	}
	if *chartPath != "" {
		if err := export.ShadowChart(*chartPath, site, result.Shadows); err != nil {
			log.Fatalf("cannot write chart: %v", err)
		}
		fmt.Printf("Chart written to %s\n", *chartPath)
	}

	config.AddRecentSite(path)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		log.Printf("warning: cannot save config: %v", err)
	}
}

// loadSite resolves the site file path and loads it, falling back to the
// default site when the file does not exist yet.
func loadSite(sitePath string, config model.AppConfig) (model.Site, string) {
	if sitePath == "" {
		path, err := project.DefaultSitePath()
		if err != nil {
			log.Fatalf("cannot resolve home directory: %v", err)
		}
		sitePath = path
	}
	site, err := project.LoadSite(sitePath)
	if err != nil {
		log.Fatalf("cannot load site %s: %v", sitePath, err)
	}
	config.ApplyToSettings(&site.Settings)
	return site, sitePath
}

// runImports appends buildings from any of the requested import sources and
// reports whether anything was imported.
func runImports(site *model.Site, csvPath, xlsxPath, dxfPath, dxfHeight string) bool {
	imported := false
	apply := func(label string, result importer.ImportResult) {
		for _, e := range result.Errors {
			log.Printf("%s: %s", label, e)
		}
		for _, w := range result.Warnings {
			log.Printf("%s: %s", label, w)
		}
		if len(result.Buildings) > 0 {
			site.Buildings = append(site.Buildings, result.Buildings...)
			fmt.Printf("Imported %d buildings from %s\n", len(result.Buildings), label)
			imported = true
		}
	}

	if csvPath != "" {
		apply(csvPath, importer.ImportCSV(csvPath))
	}
	if xlsxPath != "" {
		apply(xlsxPath, importer.ImportXLSX(xlsxPath))
	}
	if dxfPath != "" {
		apply(dxfPath, importer.ImportDXF(dxfPath, dxfHeight))
	}
	return imported
}

// reportSunHours prints the direct sun duration for the given date.
func reportSunHours(site model.Site, result engine.Result, dateStr string) {
	if site.Latitude == 0 && site.Longitude == 0 {
		log.Printf("site has no location set; skipping sun report")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		log.Fatalf("bad date %q (want YYYY-MM-DD): %v", dateStr, err)
	}
	hours := sun.DirectSunHours(result.Shadows, site.Latitude, site.Longitude, date)
	fmt.Printf("Direct sun on %s: %s\n", dateStr, hours)
}

// restoreBackup replaces config and site with the contents of a backup file.
func restoreBackup(backupPath, sitePath string) {
	backup, err := project.ImportAllData(backupPath)
	if err != nil {
		log.Fatalf("cannot import backup: %v", err)
	}
	if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
		log.Fatalf("cannot save config: %v", err)
	}
	if len(backup.Sites) == 0 {
		fmt.Println("Backup restored (no sites)")
		return
	}
	if sitePath == "" {
		path, err := project.DefaultSitePath()
		if err != nil {
			log.Fatalf("cannot resolve home directory: %v", err)
		}
		sitePath = path
	}
	if err := project.SaveSite(sitePath, backup.Sites[0]); err != nil {
		log.Fatalf("cannot save site: %v", err)
	}
	fmt.Printf("Backup restored to %s\n", sitePath)
}
