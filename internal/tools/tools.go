package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/mcp-kpr-go/internal/cache"
	"github.com/cloud-ru/mcp-kpr-go/internal/config"
	"github.com/cloud-ru/mcp-kpr-go/internal/metrics"
)

// Toolset содержит зависимости инструментов MCP
type Toolset struct {
	cfg    *config.Config
	tracer trace.Tracer
	cache  cache.Cache
	logger *zap.Logger
}

// New создает набор инструментов
func New(cfg *config.Config, tracer trace.Tracer, c cache.Cache, logger *zap.Logger) *Toolset {
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toolset{cfg: cfg, tracer: tracer, cache: c, logger: logger}
}

// Register регистрирует все инструменты на сервере MCP
func (ts *Toolset) Register(server *mcp.Server) {
	for _, t := range []*mcp.Tool{
		addTool(server, ToolInstallmentFixed, "Calculate monthly installment using fixed rate mortgage.", ts.MonthlyInstallmentFixed),
		addTool(server, ToolInterestFixed, "Calculate the amount of interests paid after a certain period. This assumes the mortgage is using fixed rate.", ts.InterestPaidFixed),
		addTool(server, ToolBalanceFixed, "Calculate the remaining balance after a certain period. This assumes the mortgage is using fixed rate.", ts.RemainingBalanceFixed),
		addTool(server, ToolInstallmentTiered, "Calculate monthly installment using tiered rate mortgage (bunga berjenjang). This is characterized by multiple interests and multiple tenures.", ts.MonthlyInstallmentTiered),
		addTool(server, ToolInterestTiered, "Calculate the amount of interests paid after a certain period. This assumes the mortgage is using tiered rate with multiple interests and tenures.", ts.InterestPaidTiered),
		addTool(server, ToolBalanceTiered, "Calculate the remaining balance after a certain period. This assumes the mortgage is using tiered rate with multiple interests and tenures.", ts.RemainingBalanceTiered),
		addTool(server, ToolScheduleFixed, "Build the month by month amortization schedule of a fixed rate mortgage.", ts.ScheduleFixed),
		addTool(server, ToolScheduleTiered, "Build the month by month amortization schedule of a tiered rate mortgage.", ts.ScheduleTiered),
	} {
		ts.logger.Info("Registered tool", zap.String("tool", t.Name))
	}
}

func addTool[In, Out any](server *mcp.Server, name, description string, h mcp.ToolHandlerFor[In, Out]) *mcp.Tool {
	tool := &mcp.Tool{
		Name:        name,
		Description: description,
	}
	mcp.AddTool(server, tool, h)
	return tool
}

// call выполняет общий путь инструмента: спан, валидация, кэш, расчет, метрики
func call[In, Out any](
	ctx context.Context,
	ts *Toolset,
	toolName string,
	in In,
	attrs []attribute.KeyValue,
	validate func() error,
	calc func() (Out, error),
) (Out, error) {
	var zero Out
	start := time.Now()
	defer func() {
		metrics.ToolDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())
	}()

	ctx, span := ts.tracer.Start(ctx, toolName)
	defer span.End()
	span.SetAttributes(attrs...)

	if err := validate(); err != nil {
		span.SetAttributes(attribute.String("error", "validation_error"))
		span.SetStatus(codes.Error, err.Error())
		metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
		return zero, fmt.Errorf("неверные параметры: %w", err)
	}

	key, keyErr := cache.Key(toolName, in)
	if keyErr == nil {
		cached, ok, err := ts.cache.Get(ctx, key)
		var out Out
		switch {
		case err != nil:
			ts.logger.Warn("cache lookup failed", zap.String("tool", toolName), zap.Error(err))
			metrics.CacheLookups.WithLabelValues(toolName, "error").Inc()
		case ok && json.Unmarshal([]byte(cached), &out) == nil:
			span.SetAttributes(attribute.Bool("cache_hit", true), attribute.Bool("success", true))
			metrics.CacheLookups.WithLabelValues(toolName, "hit").Inc()
			metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
			return out, nil
		default:
			metrics.CacheLookups.WithLabelValues(toolName, "miss").Inc()
		}
	}

	out, err := calc()
	if err != nil {
		span.SetAttributes(attribute.String("error", "calculation_error"))
		span.SetStatus(codes.Error, err.Error())
		metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
		ts.logger.Warn("calculation failed", zap.String("tool", toolName), zap.Error(err))
		return zero, fmt.Errorf("ошибка при выполнении расчета: %w", err)
	}

	if keyErr == nil {
		if data, err := json.Marshal(out); err == nil {
			if err := ts.cache.Set(ctx, key, string(data)); err != nil {
				ts.logger.Warn("cache store failed", zap.String("tool", toolName), zap.Error(err))
			}
		}
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	ts.logger.Debug("tool call", zap.String("tool", toolName), zap.Duration("duration", time.Since(start)))

	return out, nil
}
