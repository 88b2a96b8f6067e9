package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) addAnimal(t *testing.T, token string, fields map[string]string) models.Animal {
	t.Helper()
	rec := s.postMultipart(t, "/api/ngo/animals", fields, "pet.png", token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var animal models.Animal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &animal))
	return animal
}

func (s *testServer) photoPath(ref string) string {
	return filepath.Join(s.uploadDir, strings.TrimPrefix(ref, "/uploads/"))
}

func TestAnimalCatalog(t *testing.T) {
	s := newTestServer(t)
	pawsID, pawsToken := s.registerNGO(t, "Paws")
	_, whiskersToken := s.registerNGO(t, "Whiskers")

	rex := s.addAnimal(t, pawsToken, map[string]string{"name": "Rex", "breed": "Beagle", "age": "3"})
	assert.Equal(t, pawsID, rex.NGOID)
	assert.Equal(t, models.AnimalStatusAvailable, rex.Status)
	assert.Equal(t, 3, rex.Age)
	assert.True(t, strings.HasPrefix(rex.Image, "/uploads/"))
	_, err := os.Stat(s.photoPath(rex.Image))
	require.NoError(t, err)

	s.addAnimal(t, pawsToken, map[string]string{"name": "Luna", "breed": "Tabby", "status": "adopted"})

	rec := s.do(t, http.MethodGet, "/api/animals", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ngoName":"Paws"`)
	var listings []models.AnimalListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Rex", listings[0].Name)
	assert.Equal(t, "Paws", listings[0].NGOName)

	rec = s.do(t, http.MethodGet, "/api/ngo/animals", nil, whiskersToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var own []models.Animal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &own))
	assert.Empty(t, own)

	rec = s.do(t, http.MethodGet, "/api/ngo/animals", nil, pawsToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &own))
	assert.Len(t, own, 2)

	path := "/api/ngo/animals/" + rex.ID.Hex()

	rec = s.do(t, http.MethodDelete, path, nil, whiskersToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, err = os.Stat(s.photoPath(rex.Image))
	assert.NoError(t, err, "another NGO's delete must not touch the photo")

	rec = s.do(t, http.MethodDelete, path, nil, pawsToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Animal deleted successfully")
	_, err = os.Stat(s.photoPath(rex.Image))
	assert.True(t, os.IsNotExist(err))

	rec = s.do(t, http.MethodDelete, path, nil, pawsToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/animals", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	listings = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Empty(t, listings)
}

func TestAddAnimal_Rejected(t *testing.T) {
	s := newTestServer(t)
	_, token := s.registerNGO(t, "Paws")

	tests := []struct {
		name   string
		fields map[string]string
		photo  string
		token  string
		code   int
	}{
		{"no token", map[string]string{"name": "Rex", "breed": "Beagle"}, "rex.png", "", http.StatusUnauthorized},
		{"no photo", map[string]string{"name": "Rex", "breed": "Beagle"}, "", token, http.StatusBadRequest},
		{"age not a number", map[string]string{"name": "Rex", "breed": "Beagle", "age": "three"}, "rex.png", token, http.StatusBadRequest},
		{"negative age", map[string]string{"name": "Rex", "breed": "Beagle", "age": "-1"}, "rex.png", token, http.StatusBadRequest},
		{"missing breed", map[string]string{"name": "Rex"}, "rex.png", token, http.StatusBadRequest},
		{"unknown status", map[string]string{"name": "Rex", "breed": "Beagle", "status": "sold"}, "rex.png", token, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.postMultipart(t, "/api/ngo/animals", tt.fields, tt.photo, tt.token)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	assert.Empty(t, s.animals.animals)
	assert.Empty(t, uploadedFiles(t, s.uploadDir), "rejected animals must not leave photos behind")
}

func TestDeleteAnimal_MalformedID(t *testing.T) {
	s := newTestServer(t)
	_, token := s.registerNGO(t, "Paws")

	rec := s.do(t, http.MethodDelete, "/api/ngo/animals/not-an-id", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
