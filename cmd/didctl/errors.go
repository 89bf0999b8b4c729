// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"github.com/sage-x-project/didentry"
	"github.com/sage-x-project/didentry/internal/logger"
)

// classifyCode maps a didentry failure Kind to a stable error code for
// logging, distinguishing authorization failures and crypto-format
// failures from plain input-validation failures.
func classifyCode(err error) string {
	de, ok := err.(*didentry.Error)
	if !ok {
		return logger.ErrCodeInternal
	}
	switch de.Kind {
	case didentry.KindInsufficientAuthority:
		return logger.ErrCodeUnauthorized
	case didentry.KindKeyFormat, didentry.KindKeyMismatch, didentry.KindNoPrivateKey, didentry.KindTypeError:
		return logger.ErrCodeCryptoError
	default:
		return logger.ErrCodeValidationError
	}
}

// logFailure tags err with a classified OpError, logs it, and returns
// the OpError so cobra reports the same classified message it logged.
func logFailure(log logger.Logger, msg string, err error) error {
	opErr := logger.NewOpError(classifyCode(err), msg, err)
	log.Error(msg, logger.Error(opErr))
	return opErr
}
