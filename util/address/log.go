// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/kaspanet/addrvalidator/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.ADDR)
