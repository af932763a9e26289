package prediction_test

import (
	"errors"
	"testing"

	"medequip-backend/internal/model"
	"medequip-backend/internal/prediction"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReconcile(t *testing.T) {
	Convey("Given raw predictions and the original devices", t, func() {
		devices := []model.DeviceDescriptor{
			{ID: "a", DeviceID: "VENT-004"},
			{ID: "b", DeviceID: "XRAY-9"},
		}

		Convey("When the counts match", func() {
			raw := []prediction.Raw{
				{"risk": "low"},
				{"risk": "high"},
			}
			results, err := prediction.Reconcile(raw, devices)

			Convey("Then identity is reattached positionally, order preserved", func() {
				So(err, ShouldBeNil)
				So(len(results), ShouldEqual, 2)
				So(results[0]["risk"], ShouldEqual, "low")
				So(results[0]["id"], ShouldEqual, "a")
				So(results[0]["deviceId"], ShouldEqual, "VENT-004")
				So(results[1]["risk"], ShouldEqual, "high")
				So(results[1]["id"], ShouldEqual, "b")
				So(results[1]["deviceId"], ShouldEqual, "XRAY-9")
			})
		})

		Convey("When the model echoes its own identity fields", func() {
			raw := []prediction.Raw{
				{"risk": "low", "deviceId": float64(4)},
				{"risk": "high", "deviceId": float64(9)},
			}
			results, err := prediction.Reconcile(raw, devices)

			Convey("Then the request's identity overrides the model's", func() {
				So(err, ShouldBeNil)
				So(results[0]["deviceId"], ShouldEqual, "VENT-004")
				So(results[1]["deviceId"], ShouldEqual, "XRAY-9")
			})
		})

		Convey("When the prediction count differs from the device count", func() {
			raw := []prediction.Raw{{"risk": "low"}}
			results, err := prediction.Reconcile(raw, devices)

			Convey("Then it fails instead of truncating or padding", func() {
				So(results, ShouldBeNil)
				So(errors.Is(err, prediction.ErrPredictionCountMismatch), ShouldBeTrue)
			})
		})

		Convey("When both sides are empty", func() {
			results, err := prediction.Reconcile(nil, nil)

			Convey("Then it succeeds with an empty result", func() {
				So(err, ShouldBeNil)
				So(len(results), ShouldEqual, 0)
			})
		})
	})
}
