// README: Command-line demo; generates one itinerary and optionally writes a PDF and appends to plans.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"studytrip/internal/ai"
	"studytrip/internal/modules/export"
	"studytrip/internal/modules/itinerary"
	"studytrip/internal/service"
)

func main() {
	origin := flag.String("from", "Bengaluru", "origin city")
	destination := flag.String("to", "Goa", "destination")
	days := flag.Int("days", 3, "trip length in days (1-14)")
	budget := flag.Int("budget", 6000, "budget in INR")
	style := flag.String("style", string(itinerary.StyleBackpacking), "travel style: "+styleList())
	student := flag.Bool("student", true, "holds a student card")
	matcher := flag.String("points", "balanced", "POINTS matcher: balanced or greedy")
	pdfPath := flag.String("pdf", "", "write the itinerary PDF to this path")
	savePath := flag.String("save", "", "append the plan rows to this CSV file")
	flag.Parse()

	travelStyle, err := itinerary.ParseTravelStyle(*style)
	if err != nil {
		log.Fatal(err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	planner := service.NewTripPlanner(provider, itinerary.NewParser(itinerary.SpanFinderByName(*matcher)), nil, nil, service.Options{MaxDays: 14})
	plan, err := planner.PlanTrip(ctx, itinerary.TripRequest{
		Origin:      *origin,
		Destination: *destination,
		Days:        *days,
		Budget:      *budget,
		Style:       travelStyle,
		StudentCard: *student,
	})
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	fmt.Printf("%s -> %s, %d days (%s)\n\n", *origin, *destination, *days, travelStyle)
	for i, d := range plan.Days {
		fmt.Printf("Day %d:\n%s\n\n", i+1, d)
	}
	if len(plan.Places) > 0 {
		fmt.Println("Places:")
		for _, p := range plan.Places {
			fmt.Printf("  - %s (%.4f, %.4f) %s\n", p.Name, p.Coordinates.Lat, p.Coordinates.Lng, p.Notes)
		}
		fmt.Println()
	}
	fmt.Printf("Estimated cost: %s (budget INR %d)\n", plan.Cost, *budget)

	cost := int(plan.Cost.Amount)
	if *pdfPath != "" {
		out, err := export.RenderPDF(export.PDFData{Origin: *origin, Destination: *destination, Days: plan.Days, Cost: cost})
		if err != nil {
			log.Fatalf("Error rendering PDF: %v", err)
		}
		if err := os.WriteFile(*pdfPath, out, 0o644); err != nil {
			log.Fatalf("Error writing PDF: %v", err)
		}
		fmt.Printf("PDF written to %s\n", *pdfPath)
	}
	if *savePath != "" {
		n, err := export.NewService(export.NewFileSink(*savePath), nil).Save(ctx, export.SaveRequest{
			PlanID:      plan.ID,
			Origin:      *origin,
			Destination: *destination,
			Days:        plan.Days,
			Cost:        cost,
		})
		if err != nil {
			log.Fatalf("Error saving plan: %v", err)
		}
		fmt.Printf("Appended %d rows to %s\n", n, *savePath)
	}
}

func styleList() string {
	names := make([]string, 0, len(itinerary.Styles))
	for _, s := range itinerary.Styles {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
