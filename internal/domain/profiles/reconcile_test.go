package profiles_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/mocks"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
)

func TestReconciler_FansOutToPetsAndThreads(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	petStore := mocks.NewMockPetOwnerStore(ctrl)
	threadStore := mocks.NewMockThreadParticipantStore(ctrl)
	m := metrics.New()

	invalidated := 0
	rec := profiles.NewReconciler(petStore, threadStore, profiles.ReconcilerOptions{
		Concurrency:   2,
		Policy:        storecall.DefaultPolicy(),
		Metrics:       m,
		OnPetsUpdated: func(context.Context) { invalidated++ },
	})

	p := profiles.Profile{UserID: "ana@x.com", DisplayName: "Ana B", ImageRef: "https://img/ana.png"}

	// Given two pets and one thread owned by the user
	petStore.EXPECT().ListIDsByOwner(gomock.Any(), "ana@x.com").Return([]string{"p1", "p2"}, nil)
	threadStore.EXPECT().ListIDsByParticipant(gomock.Any(), "ana@x.com").Return([]string{"a@x.com_ana@x.com"}, nil)

	petStore.EXPECT().UpdateOwnerInfo(gomock.Any(), gomock.Any(), "Ana B", "https://img/ana.png").Return(nil).Times(2)
	threadStore.EXPECT().UpdateParticipantInfo(gomock.Any(), "a@x.com_ana@x.com", "ana@x.com", "Ana B", "https://img/ana.png").Return(nil)

	// When
	report := rec.Run(context.Background(), p)

	// Then
	req.True(report.OK())
	req.Equal(3, report.Succeeded)
	req.Equal(1, invalidated)
	req.Equal(2.0, testutil.ToFloat64(m.ReconcileUpdates.WithLabelValues("pet", "ok")))
}

func TestReconciler_ReportsPartialFailures(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	petStore := mocks.NewMockPetOwnerStore(ctrl)
	threadStore := mocks.NewMockThreadParticipantStore(ctrl)

	rec := profiles.NewReconciler(petStore, threadStore, profiles.ReconcilerOptions{Policy: storecall.DefaultPolicy()})
	p := profiles.Profile{UserID: "ana@x.com", DisplayName: "Ana"}

	petStore.EXPECT().ListIDsByOwner(gomock.Any(), "ana@x.com").Return([]string{"p1", "p2"}, nil)
	threadStore.EXPECT().ListIDsByParticipant(gomock.Any(), "ana@x.com").Return([]string{"t1"}, nil)

	petStore.EXPECT().UpdateOwnerInfo(gomock.Any(), "p1", "Ana", "").Return(nil)
	petStore.EXPECT().UpdateOwnerInfo(gomock.Any(), "p2", "Ana", "").Return(errors.New("permission denied"))
	threadStore.EXPECT().UpdateParticipantInfo(gomock.Any(), "t1", "ana@x.com", "Ana", "").Return(errors.New("boom"))

	report := rec.Run(context.Background(), p)

	req.False(report.OK())
	req.Equal(1, report.Succeeded)
	req.Len(report.Failed, 2)
	req.Equal(profiles.Failure{ID: "p2", Kind: profiles.KindPet, Reason: "store reconcile.pet: permission denied"}, report.Failed[0])
	req.Equal("t1", report.Failed[1].ID)
	req.Equal(profiles.KindThread, report.Failed[1].Kind)
}

func TestReconciler_ListFailureIsReported(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	petStore := mocks.NewMockPetOwnerStore(ctrl)
	threadStore := mocks.NewMockThreadParticipantStore(ctrl)

	rec := profiles.NewReconciler(petStore, threadStore, profiles.ReconcilerOptions{Policy: storecall.DefaultPolicy()})

	petStore.EXPECT().ListIDsByOwner(gomock.Any(), "ana@x.com").Return(nil, errors.New("index missing"))
	threadStore.EXPECT().ListIDsByParticipant(gomock.Any(), "ana@x.com").Return(nil, nil)

	report := rec.Run(context.Background(), profiles.Profile{UserID: "ana@x.com"})

	req.Equal(0, report.Succeeded)
	req.Len(report.Failed, 1)
	req.Equal(profiles.AllIDs, report.Failed[0].ID)
}
