package directoryapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusacademy/tutor-directory/backend/internal/infrastructure/clients/directoryapi"
)

func TestListTutors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tutors", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"Name":"Ali","Subject":"Math"},{"Name":"Sara"}]`))
	}))
	defer server.Close()

	client := directoryapi.NewClient(server.URL, time.Second)
	tutors, err := client.ListTutors(context.Background())

	require.NoError(t, err)
	require.Len(t, tutors, 2)
	assert.Equal(t, "Ali", tutors[0]["Name"])
}

func TestListTutors_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := directoryapi.NewClient(server.URL, time.Second)
	_, err := client.ListTutors(context.Background())

	assert.ErrorContains(t, err, "502")
}

func TestListJobs_AcceptsBothShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bare array", `[{"Title":"Job A"}]`},
		{"wrapped object", `{"jobs":[{"Title":"Job A"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/jobs", r.URL.Path)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := directoryapi.NewClient(server.URL, time.Second)
			jobs, err := client.ListJobs(context.Background())

			require.NoError(t, err)
			require.Len(t, jobs, 1)
			assert.Equal(t, "Job A", jobs[0]["Title"])
		})
	}
}

func TestRegisterTutor_SendsMultipartForm(t *testing.T) {
	var gotContentType string
	var gotName, gotToken string
	var gotImage []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tutors/register", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		gotToken = r.FormValue("recaptcha_token")

		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotImage = make([]byte, 3)
		file.Read(gotImage)

		w.Write([]byte(`{"message":"Tutor registered successfully!"}`))
	}))
	defer server.Close()

	client := directoryapi.NewClient(server.URL, time.Second)
	err := client.RegisterTutor(context.Background(), directoryapi.RegistrationForm{
		Name:           "Ali",
		Qualification:  "MSc Mathematics",
		Experience:     4,
		Phone:          "03001234567",
		Bio:            "Ten years teaching O-Levels.",
		RecaptchaToken: "tok-123",
		ImageName:      "me.jpg",
		Image:          []byte{1, 2, 3},
	})

	require.NoError(t, err)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "Ali", gotName)
	assert.Equal(t, "tok-123", gotToken)
	assert.Equal(t, []byte{1, 2, 3}, gotImage)
}

func TestGetLocations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations", r.URL.Path)
		w.Write([]byte(`{"Punjab":{"Lahore":{"Lahore Cantt":["DHA","Askari"]}}}`))
	}))
	defer server.Close()

	client := directoryapi.NewClient(server.URL, time.Second)
	tree, err := client.GetLocations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"DHA", "Askari"}, tree["Punjab"]["Lahore"]["Lahore Cantt"])
}
