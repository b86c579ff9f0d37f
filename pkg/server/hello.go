// Copyright (c) 2025, the HelloKube authors.
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

package server

import (
	"log/slog"
	"net/http"

	"github.com/hellokube/hellokube/pkg/serializer"
)

// Greeting is the fixed payload returned for every request to the root path.
// Clients and the end-to-end deployment checks match it byte-for-byte, so it
// must not change without updating the deployment descriptors and docs.
const Greeting = "Hello World, from Dockers and Kubernetes!"

// handleHello answers every request to the root path with the fixed greeting.
// It is a single stateless transition: no inputs, no side effects.
func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling greeting",
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondText(w, http.StatusOK, Greeting)
}
