package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"table-finder/config"
	"table-finder/internal/container"
	"table-finder/internal/domain/outline"
	"table-finder/internal/infrastructure/report"
	"table-finder/internal/infrastructure/source"
	"table-finder/internal/infrastructure/storage"
	"table-finder/internal/infrastructure/trace"
	"table-finder/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[-] Ошибка конфигурации: %v", err)
	}

	inputPtr := flag.String("input", "", "Путь к PDF, изображению или папке с изображениями")
	outputPtr := flag.String("output", "report.yaml", "Путь к YAML-отчёту")
	rotatePtr := flag.String("rotate", "0", "Поворот кадров: 0, 90, 180, 270, cw, ccw")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки")
	dpiPtr := flag.Int("dpi", 150, "DPI при растеризации PDF")
	maxSidePtr := flag.Int("max-side", cfg.MaxSide, "Максимальная сторона кадра в пикселях (0 - без масштабирования)")
	tracePtr := flag.Bool("trace", cfg.Trace, "Печатать промежуточные шаги поиска")
	scoresPtr := flag.Bool("scores", false, "Печатать оценку каждой пары направляющих (вместе с -trace)")

	flag.Parse()

	if *inputPtr == "" {
		flag.Usage()
		os.Exit(2)
	}

	rotation, err := source.ParseRotation(*rotatePtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := source.Open(*inputPtr, source.Options{
		Rotation: rotation,
		MaxSide:  *maxSidePtr,
		DPI:      *dpiPtr,
	})
	if err != nil {
		log.Fatalf("[-] Ошибка инициализации источника: %v", err)
	}
	defer src.Close()

	if src.FrameCount() == 0 {
		log.Fatalf("[-] Ошибка: в источнике нет страниц или изображений")
	}

	repos, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("[-] Ошибка открытия хранилища: %v", err)
	}
	defer repos.Close()

	var tracer outline.Tracer
	if *tracePtr {
		tracer = trace.NewLogTracer(nil, *scoresPtr)
	}

	detector := vision.NewGoCVDetector(cfg.KernelDivisor, cfg.MinSegmentLength)
	appContainer := container.New(repos.Users, repos.Scans, detector, detector, outline.NewFinder(cfg.Params(), tracer))

	fmt.Printf("[*] Источник: %s (%d кадров), потоков: %d\n", *inputPtr, src.FrameCount(), *workersPtr)

	start := time.Now()
	results, err := appContainer.Batch(*workersPtr).ScanSource(ctx, src)
	if err != nil {
		log.Fatalf("[-] Ошибка обработки: %v", err)
	}

	rep := report.New(*inputPtr, results, time.Now())
	if err := report.Write(rep, *outputPtr); err != nil {
		log.Fatalf("[-] Ошибка записи отчёта: %v", err)
	}

	fmt.Printf("[+] Готово за %s: таблица найдена на %d из %d кадров, отчёт: %s\n",
		time.Since(start).Round(time.Millisecond), rep.Found(), len(rep.Scans), *outputPtr)
}
