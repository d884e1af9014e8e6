package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepnani0902/customer-hostel-booking/config"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/bootstrap"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/inventory"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/repository"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/booking"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

// hostelctl is the operator CLI: seed or inspect the store without going
// through the HTTP API.
func main() {
	root := &cobra.Command{
		Use:           "hostelctl",
		Short:         "Operate the hostel booking store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "config.yaml", "path to config file")

	root.AddCommand(seedCmd(), statsCmd(), bookingsCmd(), cancelCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Generate and persist a fresh bed inventory for every listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, kvStore, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := cmd.Context()

			seed := cfg.Inventory.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			generator := inventory.NewGenerator(cfg.Inventory.Listings, cfg.Inventory.RoomsPerListing, cfg.Inventory.MaxBedsPerRoom)
			inventories := generator.Generate(seed)

			if err := repository.NewInventoryRepository(kvStore).Save(ctx, inventories); err != nil {
				return err
			}
			fmt.Printf("seeded %d listings (seed %d)\n", len(inventories), seed)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <hostel-id>",
		Short: "Show occupancy stats for a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hostelID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid hostel id %q", args[0])
			}

			service, cleanup, err := openBookingService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := service.GetBookingStats(cmd.Context(), hostelID)
			if err != nil {
				return err
			}

			fmt.Printf("hostel %d: %d rooms, %d beds, %d available, %d booked, %d%% occupied\n",
				hostelID, stats.TotalRooms, stats.TotalBeds, stats.AvailableBeds, stats.BookedBeds, stats.OccupancyRate)
			return nil
		},
	}
}

func bookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings <email>",
		Short: "List a user's bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := openBookingService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			bookings, err := service.GetUserBookings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				fmt.Println("no bookings")
				return nil
			}

			sort.SliceStable(bookings, func(i, j int) bool {
				return bookings[i].BookingDate.Before(bookings[j].BookingDate)
			})
			for _, b := range bookings {
				fmt.Printf("%s  hostel %d bed %s  check-in %s  %s  %.0f\n",
					b.ID, b.HostelID, b.BedNumber, b.CheckInDate.Format("2006-01-02"), b.Status, b.TotalAmount)
			}
			return nil
		},
	}
}

func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id> <email>",
		Short: "Cancel a booking and free its bed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := openBookingService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := service.CancelBooking(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("cancelled booking %s\n", args[0])
			return nil
		},
	}
}

func openStore(cmd *cobra.Command) (*config.Config, store.Store, func(), error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	kvStore, cleanup, err := bootstrap.NewStore(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, kvStore, cleanup, nil
}

func openBookingService(cmd *cobra.Command) (booking.BookingUseCase, func(), error) {
	cfg, kvStore, cleanup, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	generator := inventory.NewGenerator(cfg.Inventory.Listings, cfg.Inventory.RoomsPerListing, cfg.Inventory.MaxBedsPerRoom)
	service := booking.NewBookingService(
		repository.NewInventoryRepository(kvStore),
		repository.NewLedgerRepository(kvStore),
		generator,
		nil, // no event publishing from the CLI
		"",
		cfg.Booking.MinimumAmount,
		booking.WithSeed(cfg.Inventory.Seed),
	)
	return service, cleanup, nil
}
