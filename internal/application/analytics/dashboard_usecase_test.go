package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/analytics"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	metrics repository.ProductMetrics
	totals  repository.CashflowTotals
}

func (r *fakeAnalyticsRepo) GetProductMetrics(context.Context) (repository.ProductMetrics, error) {
	return r.metrics, nil
}

func (r *fakeAnalyticsRepo) GetCashflowTotals(context.Context) (repository.CashflowTotals, error) {
	return r.totals, nil
}

type fakeSettingRepo struct {
	settings map[string]string
}

func (r *fakeSettingRepo) Get(key string) (*entity.Setting, error) {
	v, ok := r.settings[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{ID: 1, Key: key, Value: v}, nil
}

func (r *fakeSettingRepo) Set(key, value string) (*entity.Setting, error) {
	r.settings[key] = value
	return &entity.Setting{ID: 1, Key: key, Value: value}, nil
}

func TestGetStats_CalculaBalanceYCapital(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		metrics: repository.ProductMetrics{
			TotalProducts:   3,
			TotalStock:      25,
			TotalStockValue: decimal.NewFromInt(1250000),
			LowStockCount:   1,
		},
		totals: repository.CashflowTotals{
			TotalIncome:  decimal.NewFromInt(800000),
			TotalExpense: decimal.NewFromInt(300000),
		},
	}
	settingRepo := &fakeSettingRepo{settings: map[string]string{
		entity.SettingInitialCapital: "1000000",
	}}
	uc := analytics.NewDashboardUseCase(analyticsRepo, settingRepo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalProducts)
	assert.Equal(t, int64(25), out.TotalStock)
	assert.Equal(t, int64(1), out.LowStockCount)
	assert.True(t, out.NetBalance.Equal(decimal.NewFromInt(500000)),
		"net = ingresos - gastos, obtuvo %s", out.NetBalance)
	assert.True(t, out.CurrentCapital.Equal(decimal.NewFromInt(1500000)),
		"capital actual = inicial + net, obtuvo %s", out.CurrentCapital)
}

func TestGetStats_SinCapitalInicial_ValeCero(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		totals: repository.CashflowTotals{
			TotalIncome:  decimal.NewFromInt(100),
			TotalExpense: decimal.NewFromInt(40),
		},
	}
	settingRepo := &fakeSettingRepo{settings: map[string]string{}}
	uc := analytics.NewDashboardUseCase(analyticsRepo, settingRepo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, out.InitialCapital.IsZero())
	assert.True(t, out.CurrentCapital.Equal(decimal.NewFromInt(60)))
}

func TestGetStats_CapitalIlegible_ValeCero(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{}
	settingRepo := &fakeSettingRepo{settings: map[string]string{
		entity.SettingInitialCapital: "no-es-un-numero",
	}}
	uc := analytics.NewDashboardUseCase(analyticsRepo, settingRepo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.True(t, out.InitialCapital.IsZero(),
		"un valor ilegible no debe tumbar el dashboard")
}
