package service

import (
	"context"
	"crypto/subtle"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=admin.go -destination=mocks/mock_admin.go -package=mocks

type AdminService interface {
	Verify(ctx context.Context, account, pin string) error
}

type adminService struct {
	account string
	pin     string
	logger  *logrus.Logger
}

// NewAdminService - проверка по статическим учетным данным из конфигурации
func NewAdminService(account, pin string, logger *logrus.Logger) AdminService {
	return &adminService{account: account, pin: pin, logger: logger}
}

func (s *adminService) Verify(_ context.Context, account, pin string) error {
	accountOK := subtle.ConstantTimeCompare([]byte(account), []byte(s.account)) == 1
	pinOK := subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) == 1
	if !accountOK || !pinOK {
		s.logger.WithField("account", account).Warn("Admin verification failed")
		return ErrUnauthorized
	}
	s.logger.WithField("account", account).Info("Admin verified")
	return nil
}
