package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/usecases/authenticating"
	"github.com/tortshark/campaign-analyst/pkg/apiErrors"
	"github.com/tortshark/campaign-analyst/pkg/sse"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultSlowNotice = 10 * time.Second
	defaultTimeout    = 120 * time.Second
	cliTokenTTL       = 5 * time.Minute

	slowNoticeMessage = "taking longer than expected..."
)

var ErrTimeout = errors.New("analysis timed out")

type options struct {
	url        string
	token      string
	request    domain.AnalystRequest
	slowNotice time.Duration
	timeout    time.Duration
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})

	var (
		opts     options
		question string
	)

	flag.StringVar(&opts.url, "url", "http://localhost:8000/v1/campaign-analyst", "endpoint do analista")
	flag.StringVar(&opts.token, "token", os.Getenv("ANALYST_TOKEN"), "JWT de acesso; vazio gera um token de serviço com AUTH_JWT_SECRET")
	flag.StringVar(&opts.request.WorkspaceID, "workspace", "", "workspace analisado")
	flag.StringVar(&opts.request.AnalysisPeriod, "period", "", "yesterday ou trailing7")
	flag.StringVar(&opts.request.ClientDate, "date", "", "data local do cliente (YYYY-MM-DD)")
	flag.BoolVar(&opts.request.BriefingMode, "briefing", false, "gera o briefing matinal")
	flag.StringVar(&question, "ask", "", "pergunta em modo chat")
	flag.DurationVar(&opts.slowNotice, "slow-notice", defaultSlowNotice, "aviso quando nenhum token chega")
	flag.DurationVar(&opts.timeout, "timeout", defaultTimeout, "tempo máximo da análise")
	flag.Parse()

	if opts.request.WorkspaceID == "" {
		flag.Usage()
		os.Exit(2)
	}

	if question != "" {
		opts.request.Messages = []domain.ChatMessage{{Role: domain.RoleUser, Content: question}}
	}

	if opts.request.ClientDate == "" {
		opts.request.ClientDate = time.Now().Format(time.DateOnly)
	}

	if opts.token == "" {
		token, err := serviceToken()
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token de serviço")
		}
		opts.token = token
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, http.DefaultClient, opts, os.Stdout, os.Stderr); err != nil {
		logrus.WithError(err).Error("Análise interrompida")
		os.Exit(1)
	}
}

func serviceToken() (string, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return "", err
	}
	return authenticating.NewService(cfg).GenerateToken("campaign-analyst-cli", domain.RoleServiceRole, cliTokenTTL)
}

// run envia a requisição e imprime os deltas à medida que chegam
func run(ctx context.Context, client *http.Client, opts options, stdout, stderr io.Writer) error {
	ctx, cancel := context.WithTimeoutCause(ctx, opts.timeout, ErrTimeout)
	defer cancel()

	body, err := json.Marshal(opts.request)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+opts.token)

	var received atomic.Bool
	notice := time.AfterFunc(opts.slowNotice, func() {
		if !received.Load() {
			fmt.Fprintln(stderr, slowNoticeMessage)
		}
	})
	defer notice.Stop()

	resp, err := client.Do(req)
	if err != nil {
		return withCause(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}

	if reportID := resp.Header.Get("X-Report-ID"); reportID != "" {
		fmt.Fprintf(stderr, "report %s\n", reportID)
	}

	for delta, err := range sse.Deltas(resp.Body) {
		if err != nil {
			return withCause(ctx, err)
		}
		received.Store(true)
		fmt.Fprint(stdout, delta)
	}
	fmt.Fprintln(stdout)

	return nil
}

func responseError(resp *http.Response) error {
	var msg apiErrors.MessageError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &msg); err == nil && msg.Error != "" {
		return fmt.Errorf("status %d: %s", resp.StatusCode, msg.Error)
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
}

// withCause troca o erro de transporte pela causa do cancelamento, quando houver
func withCause(ctx context.Context, err error) error {
	if cause := context.Cause(ctx); cause != nil {
		return cause
	}
	return err
}
