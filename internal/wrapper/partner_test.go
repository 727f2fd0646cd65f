package wrapper

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"esgweb/internal/client"
	"esgweb/internal/dto/partner_dto"
	"esgweb/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerHook_LoadingDuringCall(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	toaster := &toasterMock{}
	h := NewPartnerHook(&partnerClientMock{
		listFunc: func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
			close(started)
			<-release
			return nil, errors.New("backend down")
		},
	}, toaster, time.Second, 10)

	assert.False(t, h.Loading())

	done := make(chan bool)
	go func() {
		_, ok := h.List(context.Background(), 0)
		done <- ok
	}()

	<-started
	assert.True(t, h.Loading())
	close(release)

	assert.False(t, <-done)
	assert.False(t, h.Loading(), "loading must be cleared after a failed call")
}

func TestPartnerHook_Fetch(t *testing.T) {
	testCases := []struct {
		name         string
		query        schema.PartnerQuery
		listFunc     func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error)
		expectedOk   bool
		expectedPage schema.PartnerPage
		errorToasts  int
	}{
		{
			name:  "ok, defaults applied",
			query: schema.PartnerQuery{Page: -1},
			listFunc: func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
				if page != 0 || size != 10 {
					return nil, errors.New("defaults not applied")
				}
				return &partner_dto.Page{
					Content: []partner_dto.Partner{{
						ID:                1,
						CompanyName:       "Hanil Steel",
						BusinessNumber:    "1248100998",
						ContractStartDate: "2024-03-01",
						Status:            "ACTIVE",
					}},
					Number:        0,
					Size:          10,
					TotalPages:    1,
					TotalElements: 1,
				}, nil
			},
			expectedOk: true,
			expectedPage: schema.PartnerPage{
				Items: []schema.PartnerCompany{{
					ID:                 1,
					Name:               "Hanil Steel",
					RegistrationNumber: "1248100998",
					ContractStartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
					Status:             schema.PartnerActive,
				}},
				Size:          10,
				TotalPages:    1,
				TotalElements: 1,
			},
		},
		{
			name:  "err, one toast",
			query: schema.PartnerQuery{Page: 2, Size: 5, Keyword: "steel"},
			listFunc: func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
				return nil, errors.New("backend down")
			},
			expectedOk:  false,
			errorToasts: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toaster := &toasterMock{}
			h := NewPartnerHook(&partnerClientMock{listFunc: tc.listFunc}, toaster, time.Second, 10)

			page, ok := h.Fetch(context.Background(), tc.query)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expectedPage, page)
			assert.Len(t, toaster.byLevel(schema.ToastError), tc.errorToasts)
			assert.Empty(t, toaster.byLevel(schema.ToastSuccess))
		})
	}
}

func TestPartnerHook_Search(t *testing.T) {
	h := NewPartnerHook(&partnerClientMock{
		listFunc: func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
			assert.Equal(t, "steel", keyword)
			assert.Equal(t, 3, page)
			return &partner_dto.Page{Number: 3}, nil
		},
	}, &toasterMock{}, time.Second, 10)

	page, ok := h.Search(context.Background(), "steel", 3)
	require.True(t, ok)
	assert.Equal(t, 3, page.Page)
}

func TestPartnerHook_CreateFailure(t *testing.T) {
	toaster := &toasterMock{}
	h := NewPartnerHook(&partnerClientMock{
		createFunc: func(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error) {
			return nil, &client.StatusError{Code: http.StatusConflict, Status: "409 Conflict", Message: "duplicate business number"}
		},
	}, toaster, time.Second, 10)

	created, ok := h.Create(context.Background(), schema.PartnerCompany{Name: "Hanil Steel"})
	assert.False(t, ok)
	assert.Equal(t, schema.PartnerCompany{}, created, "no partial record on failure")

	errorsShown := toaster.byLevel(schema.ToastError)
	require.Len(t, errorsShown, 1)
	assert.Equal(t, "Couldn't register the partner company: duplicate business number", errorsShown[0].Message)
	assert.Empty(t, toaster.byLevel(schema.ToastSuccess))
	assert.False(t, h.Loading())
}

func TestPartnerHook_CreateSuccess(t *testing.T) {
	toaster := &toasterMock{}
	h := NewPartnerHook(&partnerClientMock{
		createFunc: func(ctx context.Context, request partner_dto.Partner) (*partner_dto.Partner, error) {
			assert.Equal(t, "2024-01-02", request.ContractStartDate)
			request.ID = 11
			return &request, nil
		},
	}, toaster, time.Second, 10)

	created, ok := h.Create(context.Background(), schema.PartnerCompany{
		Name:              "Hanil Steel",
		ContractStartDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.True(t, ok)
	assert.Equal(t, int64(11), created.ID)
	assert.Len(t, toaster.byLevel(schema.ToastSuccess), 1)
	assert.Empty(t, toaster.byLevel(schema.ToastError))
}

func TestPartnerHook_UpdateAndDelete(t *testing.T) {
	toaster := &toasterMock{}
	h := NewPartnerHook(&partnerClientMock{
		updateFunc: func(ctx context.Context, id int64, request partner_dto.Partner) (*partner_dto.Partner, error) {
			assert.Equal(t, int64(4), id)
			return &request, nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			return errors.New("delete refused")
		},
	}, toaster, time.Second, 10)

	assert.True(t, h.Update(context.Background(), schema.PartnerCompany{ID: 4, Name: "Hanil Steel"}))
	assert.False(t, h.Delete(context.Background(), 4))

	assert.Len(t, toaster.byLevel(schema.ToastSuccess), 1)
	assert.Len(t, toaster.byLevel(schema.ToastError), 1)
}

func TestPartnerHook_Timeout(t *testing.T) {
	toaster := &toasterMock{}
	h := NewPartnerHook(&partnerClientMock{
		getFunc: func(ctx context.Context, id int64) (*partner_dto.Partner, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, toaster, 10*time.Millisecond, 10)

	_, ok := h.Get(context.Background(), 1)
	assert.False(t, ok)

	errorsShown := toaster.byLevel(schema.ToastError)
	require.Len(t, errorsShown, 1)
	assert.Contains(t, errorsShown[0].Message, "did not answer in time")
}

func TestPartnerHook_All(t *testing.T) {
	calls := 0
	h := NewPartnerHook(&partnerClientMock{
		listFunc: func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
			calls++
			return &partner_dto.Page{
				Content:    []partner_dto.Partner{{ID: int64(page + 1)}},
				Number:     page,
				TotalPages: 3,
			}, nil
		},
	}, &toasterMock{}, time.Second, 1)

	all, ok := h.All(context.Background(), "")
	require.True(t, ok)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, calls)
}

func TestPartnerHook_OptionsAndCount(t *testing.T) {
	toaster := &toasterMock{}
	failing := false
	h := NewPartnerHook(&partnerClientMock{
		listFunc: func(ctx context.Context, page, size int, keyword string) (*partner_dto.Page, error) {
			if failing {
				return nil, errors.New("connection refused")
			}
			assert.Empty(t, keyword)
			return &partner_dto.Page{
				Content:       []partner_dto.Partner{{ID: 1, CompanyName: "Hankook Steel"}},
				TotalPages:    1,
				TotalElements: 42,
			}, nil
		},
	}, toaster, time.Second, 20)

	options, ok := h.Options(context.Background())
	require.True(t, ok)
	require.Len(t, options, 1)
	assert.Equal(t, "Hankook Steel", options[0].Name)

	total, ok := h.Count(context.Background())
	require.True(t, ok)
	assert.Equal(t, int64(42), total)

	failing = true
	_, ok = h.Options(context.Background())
	assert.False(t, ok)
	_, ok = h.Count(context.Background())
	assert.False(t, ok)
	assert.Empty(t, toaster.toasts)
}
