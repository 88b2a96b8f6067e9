package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/config"
	"github.com/Dias221467/Animal_Rescue/internal/database"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"github.com/Dias221467/Animal_Rescue/internal/services"
	"github.com/Dias221467/Animal_Rescue/pkg/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	NGOs []services.RegisterNGOInput `yaml:"ngos"`
}

func parseFixture(data []byte) (*fixture, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	if len(f.NGOs) == 0 {
		return nil, errors.New("fixture lists no ngos")
	}
	return &f, nil
}

// seed registers every NGO in the fixture and returns how many were created.
// NGOs whose e-mail is already registered are skipped.
func seed(ctx context.Context, ngoService *services.NGOService, f *fixture) (int, error) {
	created := 0
	for _, in := range f.NGOs {
		ngo, err := ngoService.RegisterNGO(ctx, in)
		if errors.Is(err, services.ErrConflict) {
			logger.Log.WithField("email", in.Email).Info("NGO already registered, skipping")
			continue
		}
		if err != nil {
			return created, fmt.Errorf("register %q: %w", in.Email, err)
		}
		logger.Log.WithFields(logrus.Fields{
			"ngoID": ngo.ID.Hex(),
			"name":  ngo.Name,
		}).Info("NGO seeded")
		created++
	}
	return created, nil
}

func main() {
	file := flag.String("file", "ngos.yaml", "YAML fixture listing NGOs to register")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.InitLogger(cfg.LogLevel)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}
	f, err := parseFixture(data)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer db.Client().Disconnect(context.Background())

	ngoService := services.NewNGOService(repository.NewNGORepository(db))
	created, err := seed(ctx, ngoService, f)
	if err != nil {
		logger.Log.WithError(err).Error("Seeding stopped")
	}
	logger.Log.WithField("created", created).Info("Seeding finished")
}
