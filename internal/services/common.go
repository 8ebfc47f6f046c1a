package services

import (
	"errors"
	"fmt"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) || errors.Is(err, common.ErrOrganizationNotFound) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

func getCacheKeyOrganizationBalance(organizationID string) string {
	return fmt.Sprintf("qoda:organization-balance:%s", organizationID)
}
