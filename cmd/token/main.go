// Command token issues a staff access token for the coffee catalog management endpoints.
//
//	go run ./cmd/token -env dev -staff barista-01
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/config"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/token"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	staffID := flag.String("staff", "", "Staff identifier written to the token subject")
	flag.Parse()

	// 로그는 stderr(slog 기본), 토큰만 stdout 으로 출력
	signed, err := issue(*env, *staffID)
	if err != nil {
		slog.Error("토큰 발급 실패", "error", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}

func issue(env, staffID string) (string, error) {
	if staffID == "" {
		return "", errors.New("-staff is required")
	}

	cfg, err := config.Load(env)
	if err != nil {
		return "", fmt.Errorf("설정 로드 실패: %w", err)
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		return "", errors.New("JWT_SECRET must be at least 32 characters")
	}

	signed, err := token.NewJWTManager(cfg).GenerateAccessToken(staffID, token.RoleStaff)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	slog.Info("스태프 토큰 발급", "staff_id", staffID, "expires_in", cfg.Auth.JWTExpiry.String())
	return signed, nil
}
