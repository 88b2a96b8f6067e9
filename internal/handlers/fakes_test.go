package handlers

import (
	"context"
	"sync"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reportStore struct {
	mu        sync.Mutex
	reports   map[primitive.ObjectID]models.Report
	createErr error
}

func (s *reportStore) CreateReport(_ context.Context, r *models.Report) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	r.ID = primitive.NewObjectID()
	s.reports[r.ID] = *r
	return r, nil
}

func (s *reportStore) GetReportByID(_ context.Context, id primitive.ObjectID) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (s *reportStore) ListReports(_ context.Context) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Report{}
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out, nil
}

func (s *reportStore) ListNearby(ctx context.Context, _ models.Location, _ float64, _ int64) ([]models.Report, error) {
	return s.ListReports(ctx)
}

func (s *reportStore) ClaimReport(_ context.Context, id, ngoID primitive.ObjectID, ngoName string) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Status = models.ReportStatusInProgress
	r.AssignedNGOID = &ngoID
	r.AssignedNGOName = &ngoName
	s.reports[id] = r
	return &r, nil
}

func (s *reportStore) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Status = status
	s.reports[id] = r
	return &r, nil
}

func (s *reportStore) DeleteReport(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

func (s *reportStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type notificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (s *notificationStore) CreateNotification(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = primitive.NewObjectID()
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *notificationStore) GetNGONotifications(_ context.Context, ngoID primitive.ObjectID, unreadOnly bool) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Notification{}
	for _, n := range s.notifications {
		if *n.NGOID == ngoID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *notificationStore) MarkAsRead(_ context.Context, id, ngoID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications {
		if n.ID == id && *n.NGOID == ngoID {
			s.notifications[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

type ngoStore struct {
	mu   sync.Mutex
	ngos []models.NGO
}

func (s *ngoStore) find(match func(models.NGO) bool) (*models.NGO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.ngos {
		if match(n) {
			found := n
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ngoStore) ListAll(_ context.Context) ([]models.NGOSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.NGOSummary{}
	for _, n := range s.ngos {
		out = append(out, models.NGOSummary{ID: n.ID, Name: n.Name})
	}
	return out, nil
}

func (s *ngoStore) Get(_ context.Context, id primitive.ObjectID) (*models.NGOSummary, error) {
	n, err := s.find(func(n models.NGO) bool { return n.ID == id })
	if err != nil {
		return nil, err
	}
	return &models.NGOSummary{ID: n.ID, Name: n.Name}, nil
}

func (s *ngoStore) CreateNGO(_ context.Context, ngo *models.NGO) (*models.NGO, error) {
	if _, err := s.find(func(n models.NGO) bool { return n.Email == ngo.Email }); err == nil {
		return nil, repository.ErrDuplicateEmail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ngo.ID = primitive.NewObjectID()
	s.ngos = append(s.ngos, *ngo)
	return ngo, nil
}

func (s *ngoStore) GetNGOByEmail(_ context.Context, email string) (*models.NGO, error) {
	return s.find(func(n models.NGO) bool { return n.Email == email })
}

func (s *ngoStore) GetNGOByID(_ context.Context, id primitive.ObjectID) (*models.NGO, error) {
	return s.find(func(n models.NGO) bool { return n.ID == id })
}

func (s *ngoStore) UpdateNGO(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.NGO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.ngos {
		if n.ID != id {
			continue
		}
		n.Name, _ = fields["name"].(string)
		n.Email, _ = fields["email"].(string)
		n.Phone, _ = fields["phone"].(string)
		n.Address, _ = fields["address"].(string)
		s.ngos[i] = n
		return &n, nil
	}
	return nil, repository.ErrNotFound
}

type applicationStore struct {
	mu         sync.Mutex
	adoptions  []models.AdoptionApplication
	volunteers []models.Volunteer
}

func (s *applicationStore) CreateAdoption(_ context.Context, app *models.AdoptionApplication) (*models.AdoptionApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app.ID = primitive.NewObjectID()
	s.adoptions = append(s.adoptions, *app)
	return app, nil
}

func (s *applicationStore) CreateVolunteer(_ context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = primitive.NewObjectID()
	s.volunteers = append(s.volunteers, *v)
	return v, nil
}

func (s *applicationStore) GetAdoptionsByNGO(_ context.Context, ngoID primitive.ObjectID) ([]models.AdoptionApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.AdoptionApplication{}
	for _, a := range s.adoptions {
		if a.NGOID == ngoID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *applicationStore) GetVolunteersByNGO(_ context.Context, ngoID primitive.ObjectID) ([]models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Volunteer{}
	for _, v := range s.volunteers {
		if v.NGOID == ngoID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *applicationStore) UpdateAdoptionStatus(_ context.Context, id, ngoID primitive.ObjectID, status string) (*models.AdoptionApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.adoptions {
		if a.ID == id && a.NGOID == ngoID {
			s.adoptions[i].Status = status
			updated := s.adoptions[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *applicationStore) UpdateVolunteerStatus(_ context.Context, id, ngoID primitive.ObjectID, status string) (*models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.volunteers {
		if v.ID == id && v.NGOID == ngoID {
			s.volunteers[i].Status = status
			updated := s.volunteers[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

type animalStore struct {
	mu      sync.Mutex
	animals []models.Animal
	ngos    *ngoStore
}

func (s *animalStore) CreateAnimal(_ context.Context, a *models.Animal) (*models.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = primitive.NewObjectID()
	s.animals = append(s.animals, *a)
	return a, nil
}

func (s *animalStore) GetAnimalsByNGO(_ context.Context, ngoID primitive.ObjectID) ([]models.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Animal{}
	for _, a := range s.animals {
		if a.NGOID == ngoID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *animalStore) ListAvailable(ctx context.Context) ([]models.AnimalListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.AnimalListing{}
	for _, a := range s.animals {
		if a.Status != models.AnimalStatusAvailable {
			continue
		}
		owner, err := s.ngos.Get(ctx, a.NGOID)
		if err != nil {
			continue
		}
		out = append(out, models.AnimalListing{
			ID: a.ID, Name: a.Name, Breed: a.Breed, Age: a.Age,
			Image: a.Image, Status: a.Status, NGOID: a.NGOID, NGOName: owner.Name,
		})
	}
	return out, nil
}

func (s *animalStore) DeleteAnimal(_ context.Context, id, ngoID primitive.ObjectID) (*models.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.animals {
		if a.ID == id && a.NGOID == ngoID {
			s.animals = append(s.animals[:i], s.animals[i+1:]...)
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}
