package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ==========================
// In-memory store doubles
// ==========================

type memReportStore struct {
	mu        sync.Mutex
	reports   map[primitive.ObjectID]models.Report
	createErr error
}

func newMemReportStore() *memReportStore {
	return &memReportStore{reports: map[primitive.ObjectID]models.Report{}}
}

func (m *memReportStore) CreateReport(_ context.Context, r *models.Report) (*models.Report, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = primitive.NewObjectID()
	m.reports[r.ID] = *r
	return r, nil
}

func (m *memReportStore) GetReportByID(_ context.Context, id primitive.ObjectID) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *memReportStore) ListReports(_ context.Context) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Report, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memReportStore) ListNearby(ctx context.Context, _ models.Location, _ float64, _ int64) ([]models.Report, error) {
	return m.ListReports(ctx)
}

func (m *memReportStore) ClaimReport(_ context.Context, id, ngoID primitive.ObjectID, ngoName string) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	name := ngoName
	assigned := ngoID
	r.Status = models.ReportStatusInProgress
	r.AssignedNGOID = &assigned
	r.AssignedNGOName = &name
	m.reports[id] = r
	return &r, nil
}

func (m *memReportStore) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Status = status
	m.reports[id] = r
	return &r, nil
}

func (m *memReportStore) DeleteReport(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reports[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.reports, id)
	return nil
}

func (m *memReportStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int64{}
	for _, r := range m.reports {
		counts[r.Status]++
	}
	return counts, nil
}

type memNotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
	// failFor makes CreateNotification fail for the listed recipients.
	failFor map[primitive.ObjectID]bool
}

func newMemNotificationStore() *memNotificationStore {
	return &memNotificationStore{failFor: map[primitive.ObjectID]bool{}}
}

func (m *memNotificationStore) CreateNotification(_ context.Context, n *models.Notification) error {
	if n.NGOID != nil && m.failFor[*n.NGOID] {
		return errors.New("write timeout")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = primitive.NewObjectID()
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *memNotificationStore) GetNGONotifications(_ context.Context, ngoID primitive.ObjectID, unreadOnly bool) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Notification{}
	for _, n := range m.notifications {
		if n.NGOID != nil && *n.NGOID == ngoID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotificationStore) MarkAsRead(_ context.Context, id, ngoID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.notifications {
		if n.ID == id && n.NGOID != nil && *n.NGOID == ngoID {
			m.notifications[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memNotificationStore) all() []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Notification(nil), m.notifications...)
}

type memNGOStore struct {
	mu      sync.Mutex
	ngos    map[primitive.ObjectID]models.NGO
	listErr error
}

func newMemNGOStore() *memNGOStore {
	return &memNGOStore{ngos: map[primitive.ObjectID]models.NGO{}}
}

func (m *memNGOStore) add(name string) models.NGOSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	ngo := models.NGO{ID: primitive.NewObjectID(), Name: name, Email: name + "@rescue.test"}
	m.ngos[ngo.ID] = ngo
	return models.NGOSummary{ID: ngo.ID, Name: ngo.Name}
}

func (m *memNGOStore) ListAll(_ context.Context) ([]models.NGOSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.NGOSummary, 0, len(m.ngos))
	for _, n := range m.ngos {
		out = append(out, models.NGOSummary{ID: n.ID, Name: n.Name})
	}
	return out, nil
}

func (m *memNGOStore) Get(_ context.Context, id primitive.ObjectID) (*models.NGOSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.ngos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.NGOSummary{ID: n.ID, Name: n.Name}, nil
}

func (m *memNGOStore) CreateNGO(_ context.Context, ngo *models.NGO) (*models.NGO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.ngos {
		if existing.Email == ngo.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	ngo.ID = primitive.NewObjectID()
	m.ngos[ngo.ID] = *ngo
	return ngo, nil
}

func (m *memNGOStore) GetNGOByEmail(_ context.Context, email string) (*models.NGO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.ngos {
		if n.Email == email {
			found := n
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memNGOStore) GetNGOByID(_ context.Context, id primitive.ObjectID) (*models.NGO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.ngos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &n, nil
}

func (m *memNGOStore) UpdateNGO(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.NGO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.ngos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		n.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		n.Email = v
	}
	if v, ok := fields["phone"].(string); ok {
		n.Phone = v
	}
	if v, ok := fields["address"].(string); ok {
		n.Address = v
	}
	m.ngos[id] = n
	return &n, nil
}

type memApplicationStore struct {
	mu         sync.Mutex
	adoptions  []models.AdoptionApplication
	volunteers []models.Volunteer
}

func (m *memApplicationStore) CreateAdoption(_ context.Context, app *models.AdoptionApplication) (*models.AdoptionApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app.ID = primitive.NewObjectID()
	m.adoptions = append(m.adoptions, *app)
	return app, nil
}

func (m *memApplicationStore) CreateVolunteer(_ context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v.ID = primitive.NewObjectID()
	m.volunteers = append(m.volunteers, *v)
	return v, nil
}

func (m *memApplicationStore) GetAdoptionsByNGO(_ context.Context, ngoID primitive.ObjectID) ([]models.AdoptionApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.AdoptionApplication{}
	for _, a := range m.adoptions {
		if a.NGOID == ngoID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApplicationStore) GetVolunteersByNGO(_ context.Context, ngoID primitive.ObjectID) ([]models.Volunteer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Volunteer{}
	for _, v := range m.volunteers {
		if v.NGOID == ngoID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memApplicationStore) UpdateAdoptionStatus(_ context.Context, id, ngoID primitive.ObjectID, status string) (*models.AdoptionApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.adoptions {
		if a.ID == id && a.NGOID == ngoID {
			m.adoptions[i].Status = status
			updated := m.adoptions[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memApplicationStore) UpdateVolunteerStatus(_ context.Context, id, ngoID primitive.ObjectID, status string) (*models.Volunteer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.volunteers {
		if v.ID == id && v.NGOID == ngoID {
			m.volunteers[i].Status = status
			updated := m.volunteers[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memAnimalStore struct {
	mu        sync.Mutex
	animals   []models.Animal
	ngoNames  map[primitive.ObjectID]string
	createErr error
}

func newMemAnimalStore() *memAnimalStore {
	return &memAnimalStore{ngoNames: map[primitive.ObjectID]string{}}
}

func (m *memAnimalStore) CreateAnimal(_ context.Context, a *models.Animal) (*models.Animal, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	m.animals = append(m.animals, *a)
	return a, nil
}

func (m *memAnimalStore) GetAnimalsByNGO(_ context.Context, ngoID primitive.ObjectID) ([]models.Animal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Animal{}
	for _, a := range m.animals {
		if a.NGOID == ngoID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListAvailable mirrors the storage join: animals of unknown NGOs are dropped.
func (m *memAnimalStore) ListAvailable(_ context.Context) ([]models.AnimalListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.AnimalListing{}
	for _, a := range m.animals {
		name, ok := m.ngoNames[a.NGOID]
		if !ok || a.Status != models.AnimalStatusAvailable {
			continue
		}
		out = append(out, models.AnimalListing{
			ID: a.ID, Name: a.Name, Breed: a.Breed, Age: a.Age, Image: a.Image,
			Status: a.Status, NGOID: a.NGOID, NGOName: name,
		})
	}
	return out, nil
}

func (m *memAnimalStore) DeleteAnimal(_ context.Context, id, ngoID primitive.ObjectID) (*models.Animal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.animals {
		if a.ID == id && a.NGOID == ngoID {
			m.animals = append(m.animals[:i], m.animals[i+1:]...)
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}
