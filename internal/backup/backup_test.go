package backup

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quadro-app/quadro/internal/model"
)

type BackupSuite struct {
	suite.Suite
}

func TestBackupSuite(t *testing.T) {
	suite.Run(t, new(BackupSuite))
}

func (s *BackupSuite) archive() Archive {
	raw := 10
	delta := 3.0
	return Archive{
		Rooms: []model.Room{{
			ID:   1,
			Team: model.TeamHydro,
			Seats: []model.Seat{
				{Occupant: &model.Designer{Handle: "ana", DisplayName: "ana", Class: model.ClassA, Status: model.StatusActive}},
				{},
			},
		}},
		Events: []model.EvaluationEvent{{
			ID:         "ev-1",
			Timestamp:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			Team:       model.TeamHydro,
			Activity:   "Projeto Alfa",
			Target:     "ana",
			Category:   "Qualidade Técnica",
			RawScore:   &raw,
			PointDelta: &delta,
			Kind:       model.KindRegular,
		}},
		Totals: map[model.Handle]float64{"ana": 3},
		Inactive: []model.InactiveRecord{{
			Handle:         "bia",
			PreservedTotal: 2,
			RemovedAt:      time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		}},
		Accounts: []model.Account{{
			Username: "diretor1", DisplayName: "Diretor 1",
			Role: model.RoleDirector, Enabled: true,
		}},
		Audit: []model.AuditEntry{{
			Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			Actor:     "diretor1",
			Role:      model.RoleDirector,
			Action:    model.AuditBackup,
		}},
	}
}

func (s *BackupSuite) TestRoundTrip() {
	original := s.archive()

	var buf bytes.Buffer
	s.Require().NoError(Export(&buf, original))

	restored, err := Import(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	s.Require().NoError(err)
	s.Equal(original, restored)
}

func (s *BackupSuite) TestImportRejectsMissingCollection() {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("rooms.json")
	s.Require().NoError(err)
	_, err = f.Write([]byte("[]"))
	s.Require().NoError(err)
	s.Require().NoError(zw.Close())

	_, err = Import(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	s.Require().Error(err)
	s.Contains(err.Error(), "missing")
}

func (s *BackupSuite) TestImportToleratesMissingAudit() {
	original := s.archive()
	original.Audit = nil

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, payload := range map[string]string{
		"rooms.json":    "[]",
		"events.json":   "[]",
		"totals.json":   "{}",
		"inactive.json": "[]",
		"accounts.json": "[]",
	} {
		f, err := zw.Create(name)
		s.Require().NoError(err)
		_, err = f.Write([]byte(payload))
		s.Require().NoError(err)
	}
	s.Require().NoError(zw.Close())

	restored, err := Import(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	s.Require().NoError(err)
	s.Empty(restored.Audit)
}

func (s *BackupSuite) TestImportRejectsGarbage() {
	_, err := Import(bytes.NewReader([]byte("not a zip")), 9)
	s.Require().Error(err)
}
