package neodb_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/filter"
	"github.com/hupe1980/neodb/testutil"
)

// Example demonstrates linking a data set and running a limited query.
func Example() {
	neos, approaches := testutil.Fixture()

	db, err := neodb.New(neos, approaches)
	if err != nil {
		log.Fatal(err)
	}

	criteria := filter.Criteria{
		Date: filter.Date(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	for ca, err := range filter.Limit(db.Query(context.Background(), filter.Create(criteria)...), 1) {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ca)
	}
	// Output: At 2021-01-01 00:00, '2021 AB (Rocky)' approaches Earth at a distance of 0.20 au and a velocity of 5.00 km/s.
}

// Example_lookup demonstrates the designation and name lookups.
func Example_lookup() {
	neos, approaches := testutil.Fixture()

	db, err := neodb.New(neos, approaches)
	if err != nil {
		log.Fatal(err)
	}

	if neo, ok := db.GetByDesignation("433"); ok {
		fmt.Println(neo)
	}
	if _, ok := db.GetByName(""); !ok {
		fmt.Println("empty name not found")
	}
	// Output:
	// NEO 433 (Eros) has a diameter of 16.840 km and is not potentially hazardous.
	// empty name not found
}

// Example_metrics demonstrates collecting query metrics.
func Example_metrics() {
	metrics := &neodb.BasicMetricsCollector{}
	neos, approaches := testutil.Fixture()

	db, err := neodb.New(neos, approaches, neodb.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}

	for _, err := range db.Query(context.Background(), filter.HazardousFilter{Op: filter.OpEqual, Value: true}) {
		if err != nil {
			log.Fatal(err)
		}
	}

	stats := metrics.GetStats()
	fmt.Printf("scanned=%d matched=%d\n", stats.QueryScanned, stats.QueryMatched)
	// Output: scanned=6 matched=3
}
