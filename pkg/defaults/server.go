// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

const (
	// ServerAddress is the interface the server binds to.
	ServerAddress = "127.0.0.1"

	// ServerPort is the TCP port the server listens on.
	ServerPort = 5005

	// ServerWorkers is the number of requests rendered concurrently.
	ServerWorkers = 1

	// ServerRateLimit is the sustained request rate in requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200
)

const (
	// MinPort and MaxPort bound a valid listen port.
	MinPort = 1
	MaxPort = 65535
)
