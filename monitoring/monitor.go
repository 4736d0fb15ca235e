// Package monitoring serves the state of running lists over HTTP.
package monitoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/arraylist/id"
	"github.com/sarchlab/arraylist/naming"
)

// Inspectable is a list that can be watched by the monitor.
type Inspectable interface {
	naming.Named
	Size() int
	Capacity() int
}

// Monitor turns a process that owns lists into a server that reports their
// state.
type Monitor struct {
	portNumber int

	listsLock sync.Mutex
	lists     []Inspectable

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar

	listener net.Listener
	server   *http.Server
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterList registers a list to be monitored.
func (m *Monitor) RegisterList(l Inspectable) {
	m.listsLock.Lock()
	defer m.listsLock.Unlock()

	for _, registered := range m.lists {
		if registered.Name() == l.Name() {
			panic("list " + l.Name() + " is already registered")
		}
	}

	m.lists = append(m.lists, l)
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        id.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the report.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Router returns the HTTP routes of the monitor.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/lists", m.listLists)
	r.HandleFunc("/api/list/{name}", m.listDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	return r
}

// StartServer starts serving in the background and returns the URL of the
// monitor.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.listener = listener
	m.server = &http.Server{
		Handler:           m.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring lists with %s\n", url)

	go func() {
		err := m.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			dieOnErr(err)
		}
	}()

	return url
}

// OpenInBrowser opens a URL served by the monitor in the default browser.
func (m *Monitor) OpenInBrowser(url string) error {
	return browser.OpenURL(url)
}

// StopServer stops the server started by StartServer.
func (m *Monitor) StopServer() error {
	if m.server == nil {
		return nil
	}

	return m.server.Close()
}

type listInfo struct {
	Name     string `json:"list"`
	Size     int    `json:"size"`
	Capacity int    `json:"cap"`
}

func (m *Monitor) listLists(w http.ResponseWriter, r *http.Request) {
	sortMethod, limit, offset, err := m.listsParseParams(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	infos := m.sortAndSelectLists(sortMethod, limit, offset)

	bytes, err := json.Marshal(infos)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (*Monitor) listsParseParams(
	r *http.Request,
) (sort string, limit, offset int, err error) {
	sortMethod := r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = "percent"
	}

	if sortMethod != "level" && sortMethod != "percent" &&
		sortMethod != "name" {
		errStr := fmt.Sprintf(
			"Invalid sort method: %s. "+
				"Allowed values are `level`, `percent` and `name`",
			sortMethod)

		return "", 0, 0, errors.New(errStr)
	}

	limit, err = intParam(r, "limit")
	if err != nil {
		return sortMethod, 0, 0, err
	}

	offset, err = intParam(r, "offset")
	if err != nil {
		return sortMethod, limit, 0, err
	}

	if limit < 0 || offset < 0 {
		return sortMethod, limit, offset,
			errors.New("limit and offset must not be negative")
	}

	return sortMethod, limit, offset, nil
}

func intParam(r *http.Request, key string) (int, error) {
	str := r.URL.Query().Get(key)
	if str == "" {
		return 0, nil
	}

	return strconv.Atoi(str)
}

func (i listInfo) percent() float64 {
	if i.Capacity == 0 {
		return 0
	}

	return float64(i.Size) / float64(i.Capacity)
}

func (m *Monitor) sortAndSelectLists(
	sortMethod string,
	limit, offset int,
) []listInfo {
	m.listsLock.Lock()
	infos := make([]listInfo, 0, len(m.lists))
	for _, l := range m.lists {
		infos = append(infos, listInfo{
			Name:     l.Name(),
			Size:     l.Size(),
			Capacity: l.Capacity(),
		})
	}
	m.listsLock.Unlock()

	switch sortMethod {
	case "level":
		sort.SliceStable(infos, func(i, j int) bool {
			if infos[i].Size != infos[j].Size {
				return infos[i].Size > infos[j].Size
			}

			return infos[i].percent() > infos[j].percent()
		})
	case "percent":
		sort.SliceStable(infos, func(i, j int) bool {
			if infos[i].percent() != infos[j].percent() {
				return infos[i].percent() > infos[j].percent()
			}

			return infos[i].Size > infos[j].Size
		})
	case "name":
		sort.SliceStable(infos, func(i, j int) bool {
			return infos[i].Name < infos[j].Name
		})
	default:
		panic("Invalid sort method " + sortMethod)
	}

	if offset > len(infos) {
		offset = len(infos)
	}

	end := len(infos)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return infos[offset:end]
}

func (m *Monitor) listDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	l := m.findListOr404(w, name)
	if l == nil {
		return
	}

	m.serialize(w, l, nil)
}

type fieldReq struct {
	ListName  string `json:"list_name,omitempty"`
	FieldName string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	jsonString := mux.Vars(r)["json"]
	req := fieldReq{}

	err := json.Unmarshal([]byte(jsonString), &req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	l := m.findListOr404(w, req.ListName)
	if l == nil {
		return
	}

	m.serialize(w, l, strings.Split(req.FieldName, "."))
}

func (m *Monitor) serialize(
	w http.ResponseWriter,
	l Inspectable,
	entryPoint []string,
) {
	if locker, ok := l.(sync.Locker); ok {
		locker.Lock()
		defer locker.Unlock()
	}

	buf := bytes.NewBuffer(nil)

	serializer := goseth.NewSerializer()
	serializer.SetRoot(l)
	serializer.SetMaxDepth(1)

	if entryPoint != nil {
		err := serializer.SetEntryPoint(entryPoint)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Error: %s", err)

			return
		}
	}

	err := serializer.Serialize(buf)
	dieOnErr(err)

	_, err = w.Write(buf.Bytes())
	dieOnErr(err)
}

func (m *Monitor) findListOr404(
	w http.ResponseWriter,
	name string,
) Inspectable {
	m.listsLock.Lock()
	defer m.listsLock.Unlock()

	for _, l := range m.lists {
		if l.Name() == name {
			return l
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("List not found"))
	dieOnErr(err)

	return nil
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	snapshots := make([]progressSnapshot, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		snapshots = append(snapshots, b.snapshot())
	}
	m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(snapshots)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
