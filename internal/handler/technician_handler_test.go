package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"medequip-backend/config"
	"medequip-backend/internal/handler"
	"medequip-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"
)

type fakeTechnicianRepo struct {
	created  []*model.Technician
	updated  map[uint]string
	findErr  error
	saveErr  error
	existing *model.Technician
}

func (f *fakeTechnicianRepo) Create(t *model.Technician) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	t.ID = uint(len(f.created) + 1)
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTechnicianRepo) FindByID(id uint) (*model.Technician, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.existing, nil
}

func (f *fakeTechnicianRepo) FindByEmail(email string) (*model.Technician, error) {
	return f.existing, f.findErr
}

func (f *fakeTechnicianRepo) UpdatePassword(id uint, hashed string) error {
	if f.updated == nil {
		f.updated = map[uint]string{}
	}
	f.updated[id] = hashed
	return nil
}

func (f *fakeTechnicianRepo) GetAll() ([]model.Technician, error) {
	return nil, nil
}

type fakeMailer struct {
	passwordLinks []string
	assignments   []string
	err           error
}

func (f *fakeMailer) SendPasswordSetLink(to, name, link string) error {
	f.passwordLinks = append(f.passwordLinks, link)
	return f.err
}

func (f *fakeMailer) SendAssignment(to, name, deviceCode, description string) error {
	f.assignments = append(f.assignments, deviceCode)
	return f.err
}

func newTechnicianApp(repo *fakeTechnicianRepo, mail *fakeMailer) *fiber.App {
	cfg := &config.Config{JWTSecret: "test-secret", AppBaseURL: "http://app.local"}
	hdl := handler.NewTechnicianHandler(repo, mail, cfg)

	app := fiber.New()
	app.Post("/api/technicians", hdl.Create)
	app.Put("/api/technicians/password", hdl.SetPassword)
	app.Post("/api/technicians/:id/assignments", hdl.SendAssignment)
	return app
}

func doJSON(app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestTechnicianAccountFlow(t *testing.T) {
	Convey("Given the technician endpoints", t, func() {
		repo := &fakeTechnicianRepo{}
		mail := &fakeMailer{}
		app := newTechnicianApp(repo, mail)

		Convey("When creating without an email", func() {
			status, body := doJSON(app, "POST", "/api/technicians", `{"name":"Dana"}`)

			Convey("Then it is a 400 and nothing is created", func() {
				So(status, ShouldEqual, 400)
				So(body["error"], ShouldNotBeNil)
				So(len(repo.created), ShouldEqual, 0)
			})
		})

		Convey("When creating a technician", func() {
			status, _ := doJSON(app, "POST", "/api/technicians", `{"name":"Dana","email":"dana@clinic.test"}`)

			Convey("Then the account exists and a password-set link was mailed", func() {
				So(status, ShouldEqual, 201)
				So(len(repo.created), ShouldEqual, 1)
				So(repo.created[0].Password, ShouldEqual, "")
				So(len(mail.passwordLinks), ShouldEqual, 1)
				So(mail.passwordLinks[0], ShouldStartWith, "http://app.local/set-password?token=")
			})

			Convey("And when the link token is used to set a password", func() {
				token := strings.TrimPrefix(mail.passwordLinks[0], "http://app.local/set-password?token=")
				status, _ := doJSON(app, "PUT", "/api/technicians/password",
					`{"token":"`+token+`","password":"s3cret-pw"}`)

				Convey("Then the stored password is a bcrypt hash of it", func() {
					So(status, ShouldEqual, 200)
					hashed := repo.updated[1]
					So(hashed, ShouldNotBeEmpty)
					So(bcrypt.CompareHashAndPassword([]byte(hashed), []byte("s3cret-pw")), ShouldBeNil)
				})
			})
		})

		Convey("When setting a password with a bogus token", func() {
			status, body := doJSON(app, "PUT", "/api/technicians/password", `{"token":"garbage","password":"pw"}`)

			Convey("Then it is a 401 and nothing is stored", func() {
				So(status, ShouldEqual, 401)
				So(body["error"], ShouldNotBeNil)
				So(len(repo.updated), ShouldEqual, 0)
			})
		})

		Convey("When sending a service assignment", func() {
			repo.existing = &model.Technician{Name: "Dana", Email: "dana@clinic.test"}
			status, _ := doJSON(app, "POST", "/api/technicians/1/assignments",
				`{"deviceId":"VENT-004","description":"Quarterly check"}`)

			Convey("Then the assignment email goes out", func() {
				So(status, ShouldEqual, 200)
				So(mail.assignments, ShouldResemble, []string{"VENT-004"})
			})
		})
	})
}
