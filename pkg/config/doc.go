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

// Package config loads the optional pbar YAML configuration file.
//
// A configuration file supplies server settings, the template source and the
// color palette:
//
//	server:
//	  address: 0.0.0.0
//	  port: 8080
//	  workers: 4
//	  rateLimit: 50
//	  rateLimitBurst: 100
//	  shutdownTimeout: 10s
//	template:
//	  file: /etc/pbar/bar.svg
//	palette:
//	  low: "#d9534f"
//	  mid: "#f0ad4e"
//	  high: "#5cb85c"
//	  title: "#428bca"
//
// Every key is optional. Zero values leave the built-in defaults in place and
// command-line flags take precedence over the file.
package config
